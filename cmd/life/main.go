//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/internal/app"
	"golife/internal/life"
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
	shared := life.NewShared(grid)

	// Background stepper: the board advances on its own clock while the
	// render loop reads it through the Shared lock.
	interval := time.Second / time.Duration(max(cfg.TPS, 1))
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			shared.Step()
		}
	}()

	game := app.New(shared, grid.Size(), cfg.Scale)
	winW, winH := game.Layout(0, 0)

	ebiten.SetWindowTitle("golife")
	ebiten.SetWindowSize(winW, winH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
