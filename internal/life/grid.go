// Package life implements Conway's Game of Life on a fixed-size toroidal grid.
package life

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"golife/internal/core"
)

// Cell is the state of a single grid cell.
type Cell uint8

// Cell states.
const (
	Dead Cell = iota
	Alive
)

// Grid holds the cell state for a toroidal Game of Life board. The live and
// scratch buffers always have identical dimensions; Advance swaps their
// ownership instead of copying.
//
// Grid performs no internal locking. Callers that mutate and read it from
// different goroutines must hold a single lock around each full operation;
// see Shared.
type Grid struct {
	w, h int
	cur  []Cell
	nxt  []Cell
}

// New returns a Grid with every cell Dead. Both dimensions must be at least 1.
func New(w, h int) (*Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("life: invalid grid size %dx%d", w, h)
	}
	cells := make([]Cell, w*h)
	return &Grid{w: w, h: h, cur: cells, nxt: make([]Cell, len(cells))}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the current (live) buffer in row-major order.
func (g *Grid) Cells() []Cell { return g.cur }

// At returns the cell at column x, row y without wrapping.
func (g *Grid) At(x, y int) Cell { return g.cur[y*g.w+x] }

// Set assigns the cell at column x, row y. Intended for seeding fixtures.
func (g *Grid) Set(x, y int, c Cell) { g.cur[y*g.w+x] = c }

// Randomize rewrites the live buffer in place, making each cell Alive with
// probability 0.5. Cells are drawn in row-major order, so a seeded source
// reproduces the same pattern as sampling w*h booleans directly.
func (g *Grid) Randomize(rng *rand.Rand) {
	for i := range g.cur {
		if rng.IntN(2) == 1 {
			g.cur[i] = Alive
		} else {
			g.cur[i] = Dead
		}
	}
}

// Reset randomizes the board using a deterministic source seeded with seed.
func (g *Grid) Reset(seed int64) {
	g.Randomize(core.NewRNG(seed).Source())
}

// Advance computes the next generation into the scratch buffer and reports
// whether anything changed. On change the live and scratch buffers swap
// ownership; a static board is left untouched and the stale scratch contents
// are simply overwritten on the next call.
func (g *Grid) Advance() bool {
	w, h := g.w, g.h
	if len(g.cur) != w*h || len(g.nxt) != len(g.cur) {
		panic("life: live and scratch buffers out of sync")
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := g.aliveNeighbors(x, y)
			idx := y*w + x
			alive := g.cur[idx] == Alive
			g.nxt[idx] = Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				g.nxt[idx] = Alive
			}
		}
	}
	if slices.Equal(g.cur, g.nxt) {
		return false
	}
	g.cur, g.nxt = g.nxt, g.cur
	return true
}

// aliveNeighbors counts the Alive cells among the 8 toroidally wrapped
// neighbors of (x, y).
func (g *Grid) aliveNeighbors(x, y int) int {
	w, h := g.w, g.h
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if g.cur[ny*w+nx] == Alive {
				count++
			}
		}
	}
	return count
}
