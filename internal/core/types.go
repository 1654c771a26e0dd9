package core

// Size describes the dimensions of a simulation grid in cells.
type Size struct {
	W int
	H int
}

// Count returns the total number of cells.
func (s Size) Count() int { return s.W * s.H }
