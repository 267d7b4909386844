package traces

import (
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/graph2d"
)

// Equation computes the y value plotted at x. pos is the pixel column x
// was sampled at, counted from the left edge of the graph.
type Equation interface {
	ComputePoint(x float64, pos int) float64
}

// EquationFunc adapts an ordinary function to the Equation interface.
type EquationFunc func(x float64, pos int) float64

// ComputePoint calls f(x, pos).
func (f EquationFunc) ComputePoint(x float64, pos int) float64 { return f(x, pos) }

// Line plots an equation across the full X axis.
// NaN and infinite results leave a gap in the line.
type Line struct {
	*graph2d.Trace

	mu    sync.Mutex
	eq    Equation
	style style
}

// NewLine creates a line trace for eq.
func NewLine(eq Equation, opts ...Option) *Line {
	l := &Line{eq: eq, style: applyOptions(opts)}
	l.Trace = graph2d.NewTrace(l, l.style.trace...)
	return l
}

// SetEquation replaces the plotted equation.
func (l *Line) SetEquation(eq Equation) {
	l.mu.Lock()
	l.eq = eq
	l.mu.Unlock()
	l.Generate()
}

// Equation returns the plotted equation.
func (l *Line) Equation() Equation {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.eq
}

// DrawTrace implements graph2d.Drawer.
func (l *Line) DrawTrace(dc *gg.Context) error {
	eq := l.Equation()
	if eq == nil {
		return nil
	}
	g := l.Graph()
	ax := g.XAxis()

	l.style.setStroke(dc, g)

	pen, drawn := false, false
	for pos := 0; pos <= ax.Length(); pos++ {
		x := ax.PositionToValue(float64(pos))
		y := eq.ComputePoint(x, pos)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			pen = false
			continue
		}
		if pen {
			dc.LineTo(x, y)
		} else {
			dc.MoveTo(x, y)
			pen, drawn = true, true
		}
	}
	if !drawn {
		return nil
	}
	return dc.Stroke()
}
