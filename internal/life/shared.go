package life

import "sync"

// Shared wraps a Grid with the mutual exclusion the background-stepper
// deployment shape requires: one goroutine advances the board on a timer
// while another reads it to build a frame. The lock is held for the full
// duration of each operation so a reader never observes a grid mid-rewrite.
//
// The dirty flag records whether the board changed since the last ConsumeDirty,
// letting the render side skip repaints of a static configuration.
type Shared struct {
	mu    sync.Mutex
	grid  *Grid
	dirty bool
}

// NewShared wraps the provided grid. The grid must not be used directly
// afterwards.
func NewShared(g *Grid) *Shared {
	return &Shared{grid: g, dirty: true}
}

// Step advances the board one generation and marks it dirty if it changed.
func (s *Shared) Step() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.grid.Advance()
	if changed {
		s.dirty = true
	}
	return changed
}

// Reset reseeds the board and marks it dirty.
func (s *Shared) Reset(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Reset(seed)
	s.dirty = true
}

// View calls fn with the grid while holding the lock. fn must not retain the
// grid or its cell slice past the call.
func (s *Shared) View(fn func(*Grid)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid)
}

// ConsumeDirty calls fn with the grid only if the board changed since the
// last call, clearing the dirty flag, and reports whether fn ran. The lock is
// held for the full duration of fn so a frame build never observes a board
// mid-rewrite.
func (s *Shared) ConsumeDirty(fn func(*Grid)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return false
	}
	s.dirty = false
	fn(s.grid)
	return true
}
