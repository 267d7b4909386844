package traces

import (
	"math"
	"slices"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/graph2d"
)

// Bars draws one vertical bar per value, rising from y = 0. Bar i is
// centred on x = start + i*spacing.
type Bars struct {
	*graph2d.Trace

	mu      sync.Mutex
	values  []float64
	start   float64
	spacing float64
	style   style
}

// NewBars creates a bar trace. spacing must be positive.
func NewBars(values []float64, start, spacing float64, opts ...Option) *Bars {
	b := &Bars{
		values:  slices.Clone(values),
		start:   start,
		spacing: spacing,
		style:   applyOptions(opts),
	}
	b.Trace = graph2d.NewTrace(b, b.style.trace...)
	return b
}

// Set replaces the values.
func (b *Bars) Set(values []float64) {
	b.mu.Lock()
	b.values = slices.Clone(values)
	b.mu.Unlock()
	b.Generate()
}

// SetValue changes a single bar. Out of range indexes are ignored.
func (b *Bars) SetValue(i int, v float64) {
	b.mu.Lock()
	ok := i >= 0 && i < len(b.values)
	if ok {
		b.values[i] = v
	}
	b.mu.Unlock()
	if ok {
		b.Generate()
	}
}

// Values returns a copy of the values.
func (b *Bars) Values() []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.values)
}

// DrawTrace implements graph2d.Drawer.
func (b *Bars) DrawTrace(dc *gg.Context) error {
	values := b.Values()
	w := b.style.barWidth * b.spacing

	dc.SetColor(b.style.color.Color())
	drawn := false
	for i, v := range values {
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		x := b.start + float64(i)*b.spacing
		dc.DrawRectangle(x-w/2, 0, w, v)
		drawn = true
	}
	if !drawn {
		return nil
	}
	return dc.Fill()
}
