package gpu

import "math/bits"

// Capacity tracks the allocated element count of one GPU destination buffer.
// Growth lands on the next power of two at or above the required count and
// the capacity never shrinks, so transiently small frames cause no
// reallocation churn.
type Capacity struct {
	elems int
}

// NewCapacity returns a tracker for an initial allocation of elems elements.
func NewCapacity(elems int) Capacity {
	if elems < 0 {
		elems = 0
	}
	return Capacity{elems: elems}
}

// Elems returns the currently allocated element count.
func (c *Capacity) Elems() int { return c.elems }

// Grow reports whether a frame needing required elements forces a larger
// allocation, updating the tracked capacity when it does.
func (c *Capacity) Grow(required int) bool {
	if required <= c.elems {
		return false
	}
	c.elems = nextPowerOfTwo(required)
	return true
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
