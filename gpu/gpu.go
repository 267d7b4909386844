// Package gpu enables the hardware-accelerated trace renderer.
//
// Importing this package registers gg's GPU accelerator, after which
// traces created with graph2d.RendererGPU render their offscreen buffers
// on the GPU. If no GPU is available, gg skips the registration and the
// buffers fall back to the CPU.
//
// Usage:
//
//	import _ "github.com/gogpu/graph2d/gpu"
package gpu

import (
	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // registers the accelerator
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/graph2d"
)

// Available reports whether a GPU accelerator is registered.
func Available() bool {
	a := gg.Accelerator()
	if a == nil {
		graph2d.Logger().Debug("graph2d/gpu: no accelerator registered")
		return false
	}
	graph2d.Logger().Debug("graph2d/gpu: accelerator registered", "name", a.Name())
	return true
}

// SetDeviceProvider shares a GPU device from an external provider (for
// example a gogpu window) with the accelerator, so trace buffers and the
// host render on the same device.
func SetDeviceProvider(provider gpucontext.DeviceProvider) error {
	return gg.SetAcceleratorDeviceProvider(provider)
}
