package traces

import (
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/graph2d"
)

// Rolling is a line over the most recent samples pushed into a fixed-size
// window. The window spans the whole X axis: the oldest sample sits at the
// axis minimum and a full window reaches the axis maximum.
type Rolling struct {
	*graph2d.Trace

	mu    sync.Mutex
	buf   []float64
	head  int // index of the oldest sample
	count int
	style style
}

// NewRolling creates a rolling trace holding up to size samples.
// size is raised to 2 if smaller.
func NewRolling(size int, opts ...Option) *Rolling {
	if size < 2 {
		size = 2
	}
	r := &Rolling{buf: make([]float64, size), style: applyOptions(opts)}
	r.Trace = graph2d.NewTrace(r, r.style.trace...)
	return r
}

// Push appends samples, evicting the oldest once the window is full.
func (r *Rolling) Push(samples ...float64) {
	r.mu.Lock()
	for _, v := range samples {
		if r.count < len(r.buf) {
			r.buf[(r.head+r.count)%len(r.buf)] = v
			r.count++
			continue
		}
		r.buf[r.head] = v
		r.head = (r.head + 1) % len(r.buf)
	}
	r.mu.Unlock()
	r.Generate()
}

// Samples returns the window contents, oldest first.
func (r *Rolling) Samples() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, r.count)
	for i := range out {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

// Cap returns the window size.
func (r *Rolling) Cap() int { return len(r.buf) }

// Clear empties the window.
func (r *Rolling) Clear() {
	r.mu.Lock()
	r.head, r.count = 0, 0
	r.mu.Unlock()
	r.Generate()
}

// DrawTrace implements graph2d.Drawer.
func (r *Rolling) DrawTrace(dc *gg.Context) error {
	samples := r.Samples()
	if len(samples) < 2 {
		return nil
	}
	g := r.Graph()
	ax := g.XAxis()
	step := (ax.Max() - ax.Min()) / float64(r.Cap()-1)

	r.style.setStroke(dc, g)
	pen, drawn := false, false
	for i, y := range samples {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			pen = false
			continue
		}
		x := ax.Min() + float64(i)*step
		if pen {
			dc.LineTo(x, y)
			drawn = true
		} else {
			dc.MoveTo(x, y)
			pen = true
		}
	}
	if !drawn {
		return nil
	}
	return dc.Stroke()
}
