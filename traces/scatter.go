package traces

import (
	"math"
	"slices"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/graph2d"
)

// Point is a data-space coordinate.
type Point struct {
	X, Y float64
}

// Scatter draws a series of points as filled circles with a fixed pixel
// radius.
type Scatter struct {
	*graph2d.Trace

	mu     sync.Mutex
	points []Point
	style  style
}

// NewScatter creates a scatter trace holding a copy of points.
func NewScatter(points []Point, opts ...Option) *Scatter {
	s := &Scatter{points: slices.Clone(points), style: applyOptions(opts)}
	s.Trace = graph2d.NewTrace(s, s.style.trace...)
	return s
}

// Add appends points to the series.
func (s *Scatter) Add(points ...Point) {
	s.mu.Lock()
	s.points = append(s.points, points...)
	s.mu.Unlock()
	s.Generate()
}

// Set replaces the series with a copy of points.
func (s *Scatter) Set(points []Point) {
	s.mu.Lock()
	s.points = slices.Clone(points)
	s.mu.Unlock()
	s.Generate()
}

// Reset removes all points.
func (s *Scatter) Reset() {
	s.mu.Lock()
	s.points = s.points[:0]
	s.mu.Unlock()
	s.Generate()
}

// Points returns a copy of the series.
func (s *Scatter) Points() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.points)
}

// Len returns the number of points.
func (s *Scatter) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}

// DrawTrace implements graph2d.Drawer.
func (s *Scatter) DrawTrace(dc *gg.Context) error {
	points := s.Points()
	if len(points) == 0 {
		return nil
	}

	// Circles are drawn in pixel space so they stay round when the two
	// axes have different scales.
	pixels := make([]Point, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			continue
		}
		px, py := dc.TransformPoint(p.X, p.Y)
		pixels = append(pixels, Point{px, py})
	}
	if len(pixels) == 0 {
		return nil
	}

	dc.Push()
	defer dc.Pop()
	dc.Identity()
	dc.SetColor(s.style.color.Color())
	for _, p := range pixels {
		dc.DrawCircle(p.X, p.Y, s.style.pointRadius)
	}
	return dc.Fill()
}
