package graph2d

import "github.com/gogpu/gg"

// Canvas is the host surface traces composite their cached images onto.
//
// *gg.Context implements Canvas, so a trace can draw straight into any gg
// drawing context:
//
//	dc := gg.NewContext(640, 480)
//	dc.Translate(40, 440) // graph origin
//	trace.SetParent(dc)
type Canvas interface {
	DrawImage(img *gg.ImageBuf, x, y float64)
}

var _ Canvas = (*gg.Context)(nil)
