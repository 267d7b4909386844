package graph2d

// TraceOption configures a Trace during creation.
//
// Example:
//
//	// Default software rendering
//	t := graph2d.NewTrace(drawer)
//
//	// GPU-backed offscreen buffer
//	t := graph2d.NewTrace(drawer, graph2d.WithRenderer(graph2d.RendererGPU))
type TraceOption func(*traceOptions)

type traceOptions struct {
	renderer Renderer
	name     string
}

func defaultTraceOptions() traceOptions {
	return traceOptions{
		renderer: RendererSoftware,
	}
}

// WithRenderer selects the offscreen buffer backend. Unrecognized values
// make SetGraph fail; use Trace.SetRenderer to validate a user-supplied
// string eagerly.
func WithRenderer(r Renderer) TraceOption {
	return func(o *traceOptions) {
		o.renderer = r
	}
}

// WithName labels the trace in log output.
func WithName(name string) TraceOption {
	return func(o *traceOptions) {
		o.name = name
	}
}
