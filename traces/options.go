package traces

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/graph2d"
)

// Option configures the appearance of a trace.
type Option func(*style)

type style struct {
	color       gg.RGBA
	lineWidth   float64 // pixels; 0 keeps the harness default
	pointRadius float64 // pixels
	barWidth    float64 // fraction of the bar spacing
	trace       []graph2d.TraceOption
}

func defaultStyle() style {
	return style{
		color:       gg.RGB(0, 0, 0),
		pointRadius: 2,
		barWidth:    0.8,
	}
}

func applyOptions(opts []Option) style {
	s := defaultStyle()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithColor sets the stroke and fill colour.
func WithColor(c gg.RGBA) Option {
	return func(s *style) { s.color = c }
}

// WithLineWidth sets the line width in pixels.
func WithLineWidth(px float64) Option {
	return func(s *style) { s.lineWidth = px }
}

// WithPointRadius sets the scatter point radius in pixels.
func WithPointRadius(px float64) Option {
	return func(s *style) { s.pointRadius = px }
}

// WithBarWidth sets the bar width as a fraction of the bar spacing.
func WithBarWidth(w float64) Option {
	return func(s *style) { s.barWidth = w }
}

// WithTraceOptions passes options through to graph2d.NewTrace.
func WithTraceOptions(opts ...graph2d.TraceOption) Option {
	return func(s *style) { s.trace = append(s.trace, opts...) }
}

// setStroke applies the colour and, if configured, a pixel line width
// expressed in the data units of g.
func (s *style) setStroke(dc *gg.Context, g graph2d.Graph) {
	dc.SetColor(s.color.Color())
	if s.lineWidth > 0 {
		dc.SetLineWidth(s.lineWidth / math.Min(g.XAxis().Scale(), g.YAxis().Scale()))
	}
}
