package graph2d

import "github.com/gogpu/gg"

// Drawer draws the marks of a trace (lines, points, bars) in data-space
// coordinates. When DrawTrace is called the buffer already carries the
// data-to-pixel transform, a stroke width of about one pixel and a square
// line cap.
type Drawer interface {
	DrawTrace(dc *gg.Context) error
}

// DrawerFunc adapts an ordinary function to the Drawer interface.
type DrawerFunc func(dc *gg.Context) error

// DrawTrace calls f(dc).
func (f DrawerFunc) DrawTrace(dc *gg.Context) error { return f(dc) }

// The notification hooks below are optional. A Drawer that implements one
// of them is told about the corresponding event; otherwise the event is
// ignored.

// TraceAddedHook is notified when traces are added to the owning graph.
type TraceAddedHook interface {
	TraceAdded(traces []*Trace)
}

// TraceRemovedHook is notified when the trace is removed from its graph.
type TraceRemovedHook interface {
	TraceRemoved()
}

// PositionHook is notified when the owning graph moves on the canvas.
type PositionHook interface {
	PositionChanged(x, y int)
}
