package graph2d

// Graph is the coordinate space a trace draws into: an X and Y axis pair
// whose lengths give the pixel size of the drawing area.
type Graph interface {
	XAxis() Axis
	YAxis() Axis
}

// Surface is the standard Graph implementation. It owns its axes.
type Surface struct {
	x, y Axis
}

var _ Graph = (*Surface)(nil)

// NewSurface creates a graph surface from an axis pair.
func NewSurface(x, y Axis) *Surface {
	return &Surface{x: x, y: y}
}

// XAxis returns the horizontal axis.
func (s *Surface) XAxis() Axis { return s.x }

// YAxis returns the vertical axis.
func (s *Surface) YAxis() Axis { return s.y }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.x.Length() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.y.Length() }

// ToPixel converts a data point to pixel coordinates with the origin at
// the bottom-left corner of the surface and Y growing downward, matching
// the layout traces are composited with.
func (s *Surface) ToPixel(x, y float64) (px, py float64) {
	return s.x.ValueToPosition(x), float64(s.y.Length()) - s.y.ValueToPosition(y)
}
