package ebitenhost

import "github.com/gogpu/gg"

// textureCache maps trace images to uploaded textures across frames.
// A texture survives while its image is drawn at least once per frame.
type textureCache[T any] struct {
	upload  func(*gg.ImageBuf) T
	release func(T)

	current map[*gg.ImageBuf]T
	prev    map[*gg.ImageBuf]T
}

func newTextureCache[T any](upload func(*gg.ImageBuf) T, release func(T)) *textureCache[T] {
	return &textureCache[T]{
		upload:  upload,
		release: release,
		current: make(map[*gg.ImageBuf]T),
		prev:    make(map[*gg.ImageBuf]T),
	}
}

// rotate starts a new frame. Textures used in the previous frame but not
// in the one just finished are released.
func (c *textureCache[T]) rotate() {
	for k, tex := range c.prev {
		if _, ok := c.current[k]; !ok {
			c.release(tex)
		}
	}
	c.prev, c.current = c.current, c.prev
	clear(c.current)
}

// get returns the texture for img, uploading it on first use.
func (c *textureCache[T]) get(img *gg.ImageBuf) T {
	if tex, ok := c.current[img]; ok {
		return tex
	}
	tex, ok := c.prev[img]
	if !ok {
		tex = c.upload(img)
	}
	c.current[img] = tex
	return tex
}

func (c *textureCache[T]) len() int { return len(c.current) }
