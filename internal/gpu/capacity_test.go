package gpu

import "testing"

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1023: 1024, 1024: 1024, 1025: 2048}
	for in, want := range cases {
		if got := nextPowerOfTwo(in); got != want {
			t.Fatalf("nextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestCapacityGrowsMonotonically(t *testing.T) {
	c := NewCapacity(0)
	maxRequired := 0
	for _, required := range []int{10, 4, 100, 64, 3, 200, 1, 129} {
		if required > maxRequired {
			maxRequired = required
		}
		before := c.Elems()
		grew := c.Grow(required)
		if c.Elems() < before {
			t.Fatalf("capacity shrank from %d to %d", before, c.Elems())
		}
		if grew != (required > before) {
			t.Fatalf("Grow(%d) = %v with capacity %d", required, grew, before)
		}
		if c.Elems() < maxRequired {
			t.Fatalf("capacity %d below maximum requirement %d", c.Elems(), maxRequired)
		}
		if c.Elems()&(c.Elems()-1) != 0 {
			t.Fatalf("capacity %d is not a power of two", c.Elems())
		}
	}
}

func TestCapacityInitialAllocationIsKept(t *testing.T) {
	// A preallocated buffer larger than the first frames never reallocates.
	c := NewCapacity(4096)
	for _, required := range []int{100, 4096, 1} {
		if c.Grow(required) {
			t.Fatalf("Grow(%d) reallocated a sufficient buffer", required)
		}
	}
	if !c.Grow(4097) {
		t.Fatal("Grow past the allocation did not reallocate")
	}
	if c.Elems() != 8192 {
		t.Fatalf("capacity = %d, want 8192", c.Elems())
	}
}
