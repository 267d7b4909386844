// Command graph2d-demo draws a sample graph with every trace type, either
// to a PNG file or, with -window, live in an ebiten window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/graph2d"
	"github.com/gogpu/graph2d/gpu"
	"github.com/gogpu/graph2d/host/ebitenhost"
	"github.com/gogpu/graph2d/traces"
	"github.com/hajimehoshi/ebiten/v2"
)

const margin = 48

type trace interface {
	SetRenderer(name string) error
	SetParent(c graph2d.Canvas) error
	SetGraph(g graph2d.Graph) error
	Draw() error
}

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "graph2d.png", "output file")
		renderer = flag.String("renderer", "software", `trace renderer: "software" or "gpu"`)
		window   = flag.Bool("window", false, "open a window instead of writing a PNG")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		graph2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *renderer == string(graph2d.RendererGPU) && !gpu.Available() {
		log.Printf("No GPU accelerator, rendering on the CPU")
	}

	plotW, plotH := *width-2*margin, *height-2*margin
	x, err := graph2d.NewAxis(plotW, -1, 2*math.Pi)
	if err != nil {
		log.Fatalf("X axis: %v", err)
	}
	y, err := graph2d.NewAxis(plotH, -1.5, 1.5)
	if err != nil {
		log.Fatalf("Y axis: %v", err)
	}
	surface := graph2d.NewSurface(x, y)

	sine := traces.NewLine(traces.EquationFunc(func(x float64, _ int) float64 {
		return math.Sin(x)
	}), traces.WithColor(gg.RGB(0.1, 0.3, 0.9)), traces.WithLineWidth(2))
	bars := traces.NewBars(cosines(12), 0, math.Pi/6,
		traces.WithColor(gg.RGBA2(0.9, 0.6, 0.1, 0.5)))
	scatter := traces.NewScatter(samples(24),
		traces.WithColor(gg.RGB(0.8, 0.1, 0.2)), traces.WithPointRadius(3))
	rolling := traces.NewRolling(200, traces.WithColor(gg.RGB(0.1, 0.6, 0.2)))

	all := []trace{bars, sine, scatter, rolling}

	if *window {
		if err := runWindow(surface, all, rolling, *width, *height, *renderer); err != nil {
			log.Fatalf("Window: %v", err)
		}
		return
	}

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	dc.Translate(margin, float64(margin+plotH))
	if err := surface.DrawAxes(dc); err != nil {
		log.Fatalf("Axes: %v", err)
	}
	rolling.Push(noise(rolling.Cap(), 0)...)
	attach(all, dc, surface, *renderer)
	for _, t := range all {
		if err := t.Draw(); err != nil {
			log.Fatalf("Draw: %v", err)
		}
	}
	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Graph saved to %s (%dx%d)\n", *output, *width, *height)
}

func attach(all []trace, parent graph2d.Canvas, g graph2d.Graph, renderer string) {
	for _, t := range all {
		if err := t.SetRenderer(renderer); err != nil {
			log.Fatalf("Renderer: %v", err)
		}
		if err := t.SetParent(parent); err != nil {
			log.Fatalf("Parent: %v", err)
		}
		if err := t.SetGraph(g); err != nil {
			log.Fatalf("Graph: %v", err)
		}
	}
}

func runWindow(surface *graph2d.Surface, all []trace, rolling *traces.Rolling, w, h int, renderer string) error {
	canvas := ebitenhost.NewCanvas(margin, float64(h-margin))
	attach(all, canvas, surface, renderer)

	// Axes never change, so they are rendered once.
	axes := gg.NewContext(w, h)
	axes.Translate(margin, float64(h-margin))
	if err := surface.DrawAxes(axes); err != nil {
		return err
	}
	backdrop := ebiten.NewImageFromImage(axes.Image())

	game := ebitenhost.NewGame(canvas, w, h)
	game.Backdrop = func(screen *ebiten.Image) {
		screen.DrawImage(backdrop, nil)
	}
	frame := 0
	game.Tick = func() error {
		frame++
		rolling.Push(noise(1, frame)...)
		return nil
	}
	for _, t := range all {
		game.Add(t)
	}
	return ebitenhost.Run(game, "graph2d demo")
}

func cosines(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Cos(float64(i) * math.Pi / 6)
	}
	return out
}

func samples(n int) []traces.Point {
	out := make([]traces.Point, n)
	for i := range out {
		x := float64(i) * 2 * math.Pi / float64(n)
		out[i] = traces.Point{X: x, Y: math.Sin(x) * math.Cos(3*x)}
	}
	return out
}

// noise returns n deterministic pseudo-random samples starting at phase.
func noise(n, phase int) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(phase + i)
		out[i] = 0.5*math.Sin(t/13) + 0.25*math.Sin(t/3.7)
	}
	return out
}
