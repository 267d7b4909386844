package ebitenhost

import (
	"image/color"

	"github.com/gogpu/graph2d"
	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable is anything drawn once per frame, such as *graph2d.Trace.
type Drawable interface {
	Draw() error
}

// Game is an ebiten.Game that draws a set of traces onto a Canvas every
// frame. Traces must already be attached with Canvas as their parent.
type Game struct {
	Canvas     *Canvas
	Background color.Color
	Width      int
	Height     int

	// Backdrop, if set, is drawn before the traces each frame (axes,
	// legends).
	Backdrop func(screen *ebiten.Image)

	// Tick, if set, runs once per update before drawing; use it to feed
	// new data into traces.
	Tick func() error

	traces []Drawable
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game of the given logical size drawing onto c.
func NewGame(c *Canvas, width, height int) *Game {
	return &Game{
		Canvas:     c,
		Background: color.White,
		Width:      width,
		Height:     height,
	}
}

// Add registers traces to be drawn every frame, in order.
func (g *Game) Add(traces ...Drawable) {
	g.traces = append(g.traces, traces...)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.Tick != nil {
		return g.Tick()
	}
	return nil
}

// Draw implements ebiten.Game. A trace that fails to render keeps its
// previous image and the error is logged.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.Background != nil {
		screen.Fill(g.Background)
	}
	if g.Backdrop != nil {
		g.Backdrop(screen)
	}
	g.Canvas.BeginFrame(screen)
	g.drawTraces()
}

// drawTraces draws every trace and returns how many failed.
func (g *Game) drawTraces() int {
	failed := 0
	for _, t := range g.traces {
		if err := t.Draw(); err != nil {
			graph2d.Logger().Warn("ebitenhost: draw failed", "err", err)
			failed++
		}
	}
	return failed
}

// Layout implements ebiten.Game.
func (g *Game) Layout(int, int) (int, int) {
	return g.Width, g.Height
}

// Run opens a window titled title and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.Width, g.Height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
