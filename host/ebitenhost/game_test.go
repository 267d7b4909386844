package ebitenhost

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestCanvas_NoTarget(t *testing.T) {
	c := NewCanvas(10, 20)
	img, err := gg.NewImageBuf(4, 4, gg.FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	// Without a frame target, composites are dropped.
	c.DrawImage(img, 0, -4)
	c.DrawImage(nil, 0, 0)
	if c.Textures() != 0 {
		t.Errorf("Textures() = %d, want 0", c.Textures())
	}
}

func TestGame_LayoutAndTick(t *testing.T) {
	g := NewGame(NewCanvas(0, 0), 320, 240)
	if w, h := g.Layout(1000, 1000); w != 320 || h != 240 {
		t.Errorf("Layout() = %dx%d, want 320x240", w, h)
	}
	if err := g.Update(); err != nil {
		t.Errorf("Update() without Tick = %v", err)
	}

	ticks := 0
	stop := errors.New("stop")
	g.Tick = func() error {
		ticks++
		if ticks == 2 {
			return stop
		}
		return nil
	}
	if err := g.Update(); err != nil {
		t.Errorf("first Update() = %v", err)
	}
	if err := g.Update(); !errors.Is(err, stop) {
		t.Errorf("second Update() = %v, want stop", err)
	}
}

type countDrawable struct {
	n   int
	err error
}

func (d *countDrawable) Draw() error { d.n++; return d.err }

func TestGame_Add(t *testing.T) {
	g := NewGame(NewCanvas(0, 0), 10, 10)
	a, b := &countDrawable{}, &countDrawable{}
	g.Add(a, b)
	if len(g.traces) != 2 {
		t.Errorf("traces = %d, want 2", len(g.traces))
	}
}

func TestGame_DrawTraces(t *testing.T) {
	g := NewGame(NewCanvas(0, 0), 10, 10)
	ok := &countDrawable{}
	bad := &countDrawable{err: errors.New("render failed")}
	last := &countDrawable{}
	g.Add(ok, bad, last)

	if failed := g.drawTraces(); failed != 1 {
		t.Errorf("drawTraces() failed = %d, want 1", failed)
	}
	// A failing trace does not stop the ones after it.
	for i, d := range []*countDrawable{ok, bad, last} {
		if d.n != 1 {
			t.Errorf("trace %d drawn %d times, want 1", i, d.n)
		}
	}
}

type fakeTexture struct {
	id       int
	released bool
}

func newFakeCache() (*textureCache[*fakeTexture], *int) {
	uploads := 0
	c := newTextureCache(
		func(*gg.ImageBuf) *fakeTexture {
			uploads++
			return &fakeTexture{id: uploads}
		},
		func(tex *fakeTexture) { tex.released = true },
	)
	return c, &uploads
}

func newImage(t *testing.T) *gg.ImageBuf {
	t.Helper()
	img, err := gg.NewImageBuf(2, 2, gg.FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestTextureCache_ReuseWithinFrame(t *testing.T) {
	c, uploads := newFakeCache()
	img := newImage(t)

	a := c.get(img)
	b := c.get(img)
	if a != b || *uploads != 1 {
		t.Errorf("same image uploaded %d times, want 1", *uploads)
	}
	if c.len() != 1 {
		t.Errorf("len() = %d, want 1", c.len())
	}
}

func TestTextureCache_Rotation(t *testing.T) {
	c, uploads := newFakeCache()
	kept, dropped := newImage(t), newImage(t)

	// Frame 1 uses both images.
	c.rotate()
	keptTex := c.get(kept)
	droppedTex := c.get(dropped)

	// Frame 2 only uses kept: its texture is carried over.
	c.rotate()
	if got := c.get(kept); got != keptTex {
		t.Error("texture re-uploaded for an image drawn in the previous frame")
	}
	if *uploads != 2 {
		t.Errorf("uploads = %d, want 2", *uploads)
	}
	if droppedTex.released {
		t.Error("texture released one frame early")
	}

	// Frame 3 starts: dropped was absent for a whole frame.
	c.rotate()
	if !droppedTex.released {
		t.Error("stale texture not released")
	}
	if keptTex.released {
		t.Error("live texture released")
	}
	if c.len() != 0 {
		t.Errorf("len() = %d at frame start, want 0", c.len())
	}

	// A released image drawn again gets a fresh upload.
	if got := c.get(dropped); got == droppedTex || *uploads != 3 {
		t.Errorf("released image not re-uploaded: uploads = %d", *uploads)
	}
}
