package graph2d

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ValueType describes how a numeric value is presented to the user.
type ValueType int

const (
	// Integer values are rounded to the nearest whole number.
	Integer ValueType = iota

	// Decimal values are printed in fixed-point notation.
	Decimal

	// Exponent values are printed in scientific notation.
	Exponent
)

// String returns the value type name.
func (v ValueType) String() string {
	switch v {
	case Integer:
		return "Integer"
	case Decimal:
		return "Decimal"
	case Exponent:
		return "Exponent"
	default:
		return "Unknown"
	}
}

// ParseValueType parses a value type name, ignoring case.
func ParseValueType(s string) (ValueType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "integer", "int":
		return Integer, nil
	case "decimal":
		return Decimal, nil
	case "exponent", "exp":
		return Exponent, nil
	}
	return 0, fmt.Errorf("%w: unknown value type %q", ErrInvalidArgument, s)
}

var englishPrinter = message.NewPrinter(language.English)

// Format formats v in English with the given number of fractional digits.
// Precision is ignored for Integer.
func (v ValueType) Format(x float64, precision int) string {
	return v.format(englishPrinter, x, precision)
}

// FormatLocale is like Format but groups digits according to tag.
func (v ValueType) FormatLocale(tag language.Tag, x float64, precision int) string {
	return v.format(message.NewPrinter(tag), x, precision)
}

func (v ValueType) format(p *message.Printer, x float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Sprint(x)
	}
	switch v {
	case Integer:
		r := math.Round(x)
		if r < math.MinInt64 || r >= math.MaxInt64 {
			return p.Sprintf("%.0f", r)
		}
		return p.Sprintf("%d", int64(r))
	case Exponent:
		// Mantissas are never grouped.
		return fmt.Sprintf("%.*e", precision, x)
	default:
		return p.Sprintf("%.*f", precision, x)
	}
}
