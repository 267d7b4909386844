// Package graph2d provides 2D graph widgets (axes and traces) that render
// into a host canvas driven by a frame loop.
//
// # Overview
//
// A graph is an X and Y [Axis] pair held by a [Surface]. Each axis maps a
// data interval onto a pixel length. A [Trace] plots one series onto a
// graph: it owns an offscreen gg drawing context the size of the graph,
// renders into it only when marked dirty, caches the result as an image and
// composites that image onto its parent [Canvas] on every frame.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/graph2d"
//	)
//
//	x := graph2d.MustAxis(400, 0, 10)
//	y := graph2d.MustAxis(300, -1, 1)
//	surface := graph2d.NewSurface(x, y)
//
//	trace := graph2d.NewTrace(graph2d.DrawerFunc(func(dc *gg.Context) error {
//	    dc.SetRGB(0, 0, 1)
//	    dc.DrawLine(0, 0, 10, 1) // data-space coordinates
//	    return dc.Stroke()
//	}))
//
//	dc := gg.NewContext(480, 360)
//	dc.Translate(40, 320) // bottom-left corner of the graph
//	_ = trace.SetParent(dc)
//	_ = trace.SetGraph(surface)
//
//	// Every frame:
//	_ = trace.Draw()
//
// Concrete traces live in the traces sub-package.
//
// # Coordinate System
//
// Inside a Drawer, coordinates are in data units with Y growing upward.
// The parent canvas must have its origin at the bottom-left corner of the
// graph; traces composite their image above that point.
//
// # Renderers
//
// Offscreen buffers rasterize on the CPU by default. [RendererGPU] routes
// rendering through gg's GPU accelerator, registered by importing
// github.com/gogpu/graph2d/gpu.
package graph2d
