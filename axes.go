package graph2d

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// AxesOption configures Surface.DrawAxes.
type AxesOption func(*axesOptions)

type axesOptions struct {
	color      gg.RGBA
	face       text.Face
	labels     bool
	ticks      int
	tickLength float64
	precision  int
}

func defaultAxesOptions() axesOptions {
	return axesOptions{
		color:      gg.RGB(0, 0, 0),
		labels:     true,
		ticks:      6,
		tickLength: 4,
		precision:  1,
	}
}

// WithAxesColor sets the colour of axis lines, ticks and labels.
func WithAxesColor(c gg.RGBA) AxesOption {
	return func(o *axesOptions) { o.color = c }
}

// WithFace sets the font face used for tick labels. The default is Go
// Regular at 10 points.
func WithFace(f text.Face) AxesOption {
	return func(o *axesOptions) { o.face = f }
}

// WithoutLabels draws ticks without labels.
func WithoutLabels() AxesOption {
	return func(o *axesOptions) { o.labels = false }
}

// WithTicks sets the maximum number of major ticks per axis.
func WithTicks(n int) AxesOption {
	return func(o *axesOptions) { o.ticks = n }
}

// WithTickLength sets the tick mark length in pixels.
func WithTickLength(l float64) AxesOption {
	return func(o *axesOptions) { o.tickLength = l }
}

// WithPrecision sets the number of fractional digits of Decimal and
// Exponent labels.
func WithPrecision(p int) AxesOption {
	return func(o *axesOptions) { o.precision = p }
}

var (
	defaultFaceOnce sync.Once
	defaultFace     text.Face
	defaultFaceErr  error
)

// DefaultFace returns the Go Regular face at 10 points shared by all
// surfaces.
func DefaultFace() (text.Face, error) {
	defaultFaceOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			defaultFaceErr = fmt.Errorf("graph2d: load default font: %w", err)
			return
		}
		defaultFace = src.Face(10)
	})
	return defaultFace, defaultFaceErr
}

// DrawAxes draws the X axis along the bottom edge and the Y axis along the
// left edge of the surface, with major ticks and labels.
//
// dc's origin must be the bottom-left corner of the graph, the same
// convention traces composite with.
func (s *Surface) DrawAxes(dc *gg.Context, opts ...AxesOption) error {
	o := defaultAxesOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.labels && o.face == nil {
		f, err := DefaultFace()
		if err != nil {
			return err
		}
		o.face = f
	}

	w := float64(s.Width())
	h := float64(s.Height())

	dc.SetColor(o.color.Color())
	dc.SetLineWidth(1)
	dc.SetLineCap(gg.LineCapSquare)

	dc.DrawLine(0, 0, w, 0)
	dc.DrawLine(0, 0, 0, -h)
	for _, v := range s.x.Ticks(o.ticks) {
		px := s.x.ValueToPosition(v)
		dc.DrawLine(px, 0, px, o.tickLength)
	}
	for _, v := range s.y.Ticks(o.ticks) {
		py := -s.y.ValueToPosition(v)
		dc.DrawLine(0, py, -o.tickLength, py)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("graph2d: stroke axes: %w", err)
	}

	if !o.labels {
		return nil
	}
	prevFace := dc.Font()
	dc.SetFont(o.face)
	defer dc.SetFont(prevFace)

	// Labels are placed in device space so glyphs are never scaled.
	// X labels hang below their tick (top anchored), Y labels sit to the
	// left of theirs (right anchored).
	type label struct {
		text   string
		x, y   float64
		ax, ay float64
	}
	var labels []label
	gap := o.tickLength + 2
	for _, v := range s.x.Ticks(o.ticks) {
		x, y := dc.TransformPoint(s.x.ValueToPosition(v), gap)
		labels = append(labels, label{s.x.ValueType().Format(v, o.precision), x, y, 0.5, 0})
	}
	for _, v := range s.y.Ticks(o.ticks) {
		x, y := dc.TransformPoint(-gap, -s.y.ValueToPosition(v))
		labels = append(labels, label{s.y.ValueType().Format(v, o.precision), x, y, 1, 0.5})
	}

	dc.Push()
	defer dc.Pop()
	dc.Identity()
	for _, l := range labels {
		dc.DrawStringAnchored(l.text, l.x, l.y, l.ax, l.ay)
	}
	return nil
}
