package graph2d

import (
	"fmt"
	"math"
)

// Axis maps a data-value interval [Min, Max] onto a pixel interval
// [0, Length]. An Axis is immutable once created.
type Axis struct {
	length    int
	min, max  float64
	valueType ValueType
}

// NewAxis creates an axis of the given pixel length covering [min, max].
// It returns ErrInvalidArgument unless length > 0 and max > min.
func NewAxis(length int, min, max float64) (Axis, error) {
	if length <= 0 {
		return Axis{}, fmt.Errorf("%w: axis length %d must be positive", ErrInvalidArgument, length)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return Axis{}, fmt.Errorf("%w: axis range [%g, %g] must be finite", ErrInvalidArgument, min, max)
	}
	if !(max > min) {
		return Axis{}, fmt.Errorf("%w: axis max %g must exceed min %g", ErrInvalidArgument, max, min)
	}
	return Axis{length: length, min: min, max: max, valueType: Decimal}, nil
}

// MustAxis is like NewAxis but panics on invalid input.
// It is intended for package-level fixtures and examples.
func MustAxis(length int, min, max float64) Axis {
	a, err := NewAxis(length, min, max)
	if err != nil {
		panic(err)
	}
	return a
}

// WithValueType returns a copy of the axis whose tick labels are
// formatted as vt.
func (a Axis) WithValueType(vt ValueType) Axis {
	a.valueType = vt
	return a
}

// Length returns the axis length in pixels.
func (a Axis) Length() int { return a.length }

// Min returns the smallest data value on the axis.
func (a Axis) Min() float64 { return a.min }

// Max returns the largest data value on the axis.
func (a Axis) Max() float64 { return a.max }

// ValueType returns how tick labels on this axis are formatted.
func (a Axis) ValueType() ValueType { return a.valueType }

// Scale returns the number of pixels per data unit.
func (a Axis) Scale() float64 {
	return float64(a.length) / (a.max - a.min)
}

// ValueToPosition converts a data value to a pixel offset from the start
// of the axis. Values outside [Min, Max] extrapolate linearly.
func (a Axis) ValueToPosition(v float64) float64 {
	// Guard: the formula already yields 0 and Length at the endpoints;
	// the switch only makes that explicit.
	switch v {
	case a.min:
		return 0
	case a.max:
		return float64(a.length)
	}
	return (v - a.min) / (a.max - a.min) * float64(a.length)
}

// PositionToValue is the inverse of ValueToPosition.
func (a Axis) PositionToValue(p float64) float64 {
	switch p {
	case 0:
		return a.min
	case float64(a.length):
		return a.max
	}
	return a.min + p/float64(a.length)*(a.max-a.min)
}

// Ticks returns at most n evenly spaced tick values inside [Min, Max].
// The spacing is a "nice" step of 1, 2 or 5 times a power of ten.
// It returns nil when n < 2.
func (a Axis) Ticks(n int) []float64 {
	if n < 2 {
		return nil
	}
	step := niceStep((a.max - a.min) / float64(n-1))
	first := math.Ceil(a.min/step) * step
	ticks := make([]float64, 0, n)
	for i := 0; len(ticks) < n; i++ {
		v := first + float64(i)*step
		if v > a.max+step*1e-9 {
			break
		}
		// Snap values like 0.30000000000000004 and -0 back to the grid.
		v = math.Round(v/step) * step
		if v == 0 {
			v = 0
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// niceStep rounds raw up to the nearest 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	exp := math.Floor(math.Log10(raw))
	pow := math.Pow(10, exp)
	frac := raw / pow
	switch {
	case frac <= 1:
		return pow
	case frac <= 2:
		return 2 * pow
	case frac <= 5:
		return 5 * pow
	default:
		return 10 * pow
	}
}
