package graph2d

import (
	"fmt"
	"io"
	"math"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// Trace is the rendering harness shared by every plotted series.
//
// A Trace owns an offscreen buffer the size of its graph. The Drawer only
// runs when the trace is dirty; the rendered buffer is cached as an image
// and composited onto the parent canvas on every Draw. Call Generate
// whenever the data or styling behind the Drawer changes.
//
// Draw must be called from a single goroutine. Generate may be called
// from any goroutine.
type Trace struct {
	drawer Drawer
	name   string

	parent   Canvas
	graph    Graph
	renderer Renderer

	buffer *gg.Context
	img    *gg.ImageBuf

	dirty   atomic.Bool
	renders int
}

// Ensure Trace implements io.Closer
var _ io.Closer = (*Trace)(nil)

// NewTrace creates a detached trace that renders with d.
// The trace starts dirty, so the first Draw after SetGraph renders it.
func NewTrace(d Drawer, opts ...TraceOption) *Trace {
	options := defaultTraceOptions()
	for _, opt := range opts {
		opt(&options)
	}

	t := &Trace{
		drawer:   d,
		name:     options.name,
		renderer: options.renderer,
	}
	t.dirty.Store(true)
	return t
}

// SetRenderer selects the offscreen buffer backend by name. It accepts
// "software" and "gpu" and returns ErrInvalidArgument for anything else.
// It only affects buffers allocated by a later SetGraph.
func (t *Trace) SetRenderer(name string) error {
	r, err := ParseRenderer(name)
	if err != nil {
		return err
	}
	t.renderer = r
	return nil
}

// Renderer returns the configured backend.
func (t *Trace) Renderer() Renderer { return t.renderer }

// SetParent sets the canvas the cached image is composited onto.
// It must be called before SetGraph.
func (t *Trace) SetParent(c Canvas) error {
	if c == nil {
		return fmt.Errorf("%w: cannot assign a nil parent canvas", ErrInvalidArgument)
	}
	t.parent = c
	return nil
}

// SetGraph attaches the trace to the graph it draws on and allocates the
// offscreen buffer. A trace can be attached once: a second call returns
// ErrAlreadyAttached whatever g is.
func (t *Trace) SetGraph(g Graph) error {
	if t.graph != nil {
		return ErrAlreadyAttached
	}
	if g == nil {
		return fmt.Errorf("%w: cannot assign a nil graph to draw on", ErrInvalidArgument)
	}
	if t.parent == nil {
		return fmt.Errorf("%w: parent canvas must be set before the graph", ErrInvalidArgument)
	}
	if t.drawer == nil {
		return fmt.Errorf("%w: trace has no drawer", ErrInvalidArgument)
	}
	r, err := ParseRenderer(string(t.renderer))
	if err != nil {
		return err
	}

	t.graph = g
	t.buffer = r.newBuffer(g.XAxis().Length(), g.YAxis().Length())
	return nil
}

// Graph returns the graph the trace is attached to, or nil.
func (t *Trace) Graph() Graph { return t.graph }

// Parent returns the canvas the trace composites onto, or nil.
func (t *Trace) Parent() Canvas { return t.parent }

// Generate marks the trace dirty. Calling it several times before the
// next Draw still produces a single re-render.
func (t *Trace) Generate() {
	t.dirty.Store(true)
}

// Dirty reports whether the next Draw will re-render the buffer.
func (t *Trace) Dirty() bool { return t.dirty.Load() }

// Renders returns how many times the buffer has been re-rendered.
func (t *Trace) Renders() int { return t.renders }

// Image returns the cached rendering, or nil before the first render.
func (t *Trace) Image() *gg.ImageBuf { return t.img }

// Draw re-renders the buffer if the trace is dirty and then composites
// the cached image onto the parent canvas, offset so that the bottom-left
// corner of the image sits on the canvas origin.
//
// A trace that is not attached to a graph draws nothing. If the Drawer
// fails, the trace stays dirty and the previous image is still drawn.
func (t *Trace) Draw() error {
	if t.graph == nil || t.buffer == nil {
		return nil
	}

	var err error
	if t.dirty.CompareAndSwap(true, false) {
		if err = t.render(); err != nil {
			t.dirty.Store(true)
			err = fmt.Errorf("graph2d: draw trace %q: %w", t.name, err)
		}
	}

	if t.img != nil {
		t.parent.DrawImage(t.img, 0, -float64(t.buffer.Height()))
	}
	return err
}

func (t *Trace) render() error {
	dc := t.buffer
	ax := t.graph.XAxis()
	ay := t.graph.YAxis()

	dc.Push()
	defer dc.Pop()

	dc.Identity()
	dc.ClearPath()
	dc.Clear()

	// Data origin in buffer pixels; buffer Y grows downward.
	xoff := ax.ValueToPosition(0)
	yoff := float64(dc.Height()) - ay.ValueToPosition(0)
	dc.Translate(xoff, yoff)

	dc.Push()
	defer dc.Pop()

	xscale := ax.Scale()
	yscale := ay.Scale()
	dc.Scale(xscale, -yscale)

	// Stroke widths are scaled with the transform, so a one pixel line
	// needs 1/scale. Only one scale can be honored; the smaller gives the
	// thinner line.
	dc.SetLineWidth(1 / math.Min(xscale, yscale))
	dc.SetLineCap(gg.LineCapSquare)

	if err := t.drawer.DrawTrace(dc); err != nil {
		return err
	}
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("flush gpu: %w", err)
	}

	t.img = gg.ImageBufFromImage(dc.Image())
	t.renders++
	Logger().Debug("graph2d: trace rendered", "trace", t.name, "renders", t.renders)
	return nil
}

// OnAddTrace forwards the notification to the Drawer if it implements
// TraceAddedHook.
func (t *Trace) OnAddTrace(traces []*Trace) {
	if h, ok := t.drawer.(TraceAddedHook); ok {
		h.TraceAdded(traces)
	}
}

// OnRemoveTrace forwards the notification to the Drawer if it implements
// TraceRemovedHook.
func (t *Trace) OnRemoveTrace() {
	if h, ok := t.drawer.(TraceRemovedHook); ok {
		h.TraceRemoved()
	}
}

// SetPosition forwards the notification to the Drawer if it implements
// PositionHook. Layout is owned by the host; the trace itself ignores it.
func (t *Trace) SetPosition(x, y int) {
	if h, ok := t.drawer.(PositionHook); ok {
		h.PositionChanged(x, y)
	}
}

// Close releases the offscreen buffer and the cached image.
// The trace stays attached but draws nothing afterwards.
// Close is idempotent.
func (t *Trace) Close() error {
	if t.buffer == nil {
		return nil
	}
	err := t.buffer.Close()
	t.buffer = nil
	t.img = nil
	return err
}
