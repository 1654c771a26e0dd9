//go:build wgpu

package main

import (
	"flag"
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"golife/internal/app"
	"golife/internal/core"
	"golife/internal/gpu"
	"golife/internal/life"
	"golife/internal/scene"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		log.Fatal(err)
	}
	grid.Reset(cfg.Seed)

	win, err := gpu.NewWindow("Game of Life", 1280, 720)
	if err != nil {
		log.Fatal(err)
	}
	defer win.Close()

	renderer, err := gpu.NewRenderer(win, grid.Size().Count())
	if err != nil {
		log.Fatal(err)
	}
	defer renderer.Release()

	step := core.NewFixedStep(cfg.TPS)
	randomize := func() {
		grid.Reset(time.Now().UnixNano())
		step.Reset()
	}

	win.OnResize = renderer.Resize
	win.OnMouseRelease = func(x, y float64) {
		width, _ := win.Size()
		if scene.ButtonClicked(float32(width), [2]float32{float32(x), float32(y)}) {
			randomize()
		}
	}
	win.OnKeyPress = func(key glfw.Key) {
		if key == glfw.KeyR || key == glfw.KeySpace {
			randomize()
		}
	}

	builder := scene.NewBuilder()
	frames := 0
	lastFPSLog := time.Now()

	for win.Poll() {
		if step.ShouldStep() {
			grid.Advance()
		}

		width, height := win.Size()
		cursor, hasCursor := win.Cursor()
		builder.Build(grid, float32(width), float32(height), cursor, hasCursor)

		if err := renderer.Render(builder.Instances(), builder.Vertices()); err != nil {
			log.Fatal(err)
		}

		frames++
		if elapsed := time.Since(lastFPSLog); elapsed >= time.Second {
			log.Printf("fps: %.1f", float64(frames)/elapsed.Seconds())
			frames = 0
			lastFPSLog = time.Now()
		}
	}
}
