// Package ebitenhost runs graph2d traces inside an ebiten game loop.
//
// [Canvas] adapts an *ebiten.Image to graph2d.Canvas and [Game] calls Draw
// on every trace once per frame.
package ebitenhost

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/graph2d"
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas composites trace images onto an ebiten screen with its origin at
// (OriginX, OriginY) in screen pixels.
//
// Uploaded textures are cached per source image. A trace keeps returning
// the same image until it re-renders, so a clean trace costs one
// DrawImage call per frame and no upload.
type Canvas struct {
	OriginX, OriginY float64

	target   *ebiten.Image
	textures *textureCache[*ebiten.Image]
}

var _ graph2d.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas whose origin is at (ox, oy).
func NewCanvas(ox, oy float64) *Canvas {
	return &Canvas{
		OriginX:  ox,
		OriginY:  oy,
		textures: newTextureCache(uploadTexture, (*ebiten.Image).Deallocate),
	}
}

func uploadTexture(img *gg.ImageBuf) *ebiten.Image {
	graph2d.Logger().Debug("ebitenhost: texture uploaded",
		"width", img.Width(), "height", img.Height())
	return ebiten.NewImageFromImage(img.ToStdImage())
}

// BeginFrame targets screen for the coming DrawImage calls and releases
// textures no image used during the previous frame.
func (c *Canvas) BeginFrame(screen *ebiten.Image) {
	c.textures.rotate()
	c.target = screen
}

// DrawImage implements graph2d.Canvas.
func (c *Canvas) DrawImage(img *gg.ImageBuf, x, y float64) {
	if c.target == nil || img == nil {
		return
	}
	tex := c.textures.get(img)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(c.OriginX+x, c.OriginY+y)
	c.target.DrawImage(tex, op)
}

// Textures returns the number of textures used in the current frame.
func (c *Canvas) Textures() int { return c.textures.len() }
