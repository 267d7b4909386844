package graph2d

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
)

// Renderer names the backend an offscreen trace buffer renders with.
type Renderer string

const (
	// RendererSoftware rasterizes on the CPU only. It is the default.
	RendererSoftware Renderer = "software"

	// RendererGPU lets gg route fills and strokes through the registered
	// GPU accelerator. Import github.com/gogpu/graph2d/gpu to register one;
	// without it rendering falls back to the CPU.
	RendererGPU Renderer = "gpu"
)

// ParseRenderer validates a renderer name. Only "software" and "gpu" are
// recognized.
func ParseRenderer(s string) (Renderer, error) {
	switch r := Renderer(s); r {
	case RendererSoftware, RendererGPU:
		return r, nil
	}
	return "", fmt.Errorf("%w: renderer must be %q or %q, got %q",
		ErrInvalidArgument, RendererSoftware, RendererGPU, s)
}

// String returns the renderer name.
func (r Renderer) String() string { return string(r) }

var warnNoAccelerator sync.Once

// newBuffer allocates an offscreen drawing context for r.
func (r Renderer) newBuffer(width, height int) *gg.Context {
	dc := gg.NewContext(width, height)
	switch r {
	case RendererGPU:
		if gg.Accelerator() == nil {
			warnNoAccelerator.Do(func() {
				Logger().Warn("graph2d: gpu renderer requested but no accelerator registered, using CPU")
			})
		}
		dc.SetRasterizerMode(gg.RasterizerAuto)
		dc.SetPipelineMode(gg.PipelineModeAuto)
	default:
		// Analytic mode never consults the GPU accelerator.
		dc.SetRasterizerMode(gg.RasterizerAnalytic)
	}
	Logger().Debug("graph2d: buffer allocated", "renderer", string(r), "width", width, "height", height)
	return dc
}
