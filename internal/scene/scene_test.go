package scene

import (
	"math"
	"testing"

	"golife/internal/font"
	"golife/internal/life"
)

func mustGrid(t *testing.T, w, h int) *life.Grid {
	t.Helper()
	g, err := life.New(w, h)
	if err != nil {
		t.Fatalf("life.New(%d, %d): %v", w, h, err)
	}
	return g
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestRectContainsInclusive(t *testing.T) {
	r := Rect{Min: [2]float32{10, 20}, Max: [2]float32{30, 40}}
	for _, p := range [][2]float32{{10, 20}, {30, 40}, {20, 30}, {10, 40}} {
		if !r.Contains(p) {
			t.Fatalf("point %v should be inside %v", p, r)
		}
	}
	for _, p := range [][2]float32{{9.9, 20}, {30.1, 40}, {20, 19.9}, {20, 40.1}} {
		if r.Contains(p) {
			t.Fatalf("point %v should be outside %v", p, r)
		}
	}
}

func TestButtonRectFollowsRightEdge(t *testing.T) {
	for _, width := range []float32{640, 1280, 1920} {
		r := ButtonRect(width)
		if !approx(r.Max[0], width-ButtonPadding) {
			t.Fatalf("button right edge = %v for width %v", r.Max[0], width)
		}
		if !approx(r.Max[0]-r.Min[0], ButtonWidth) || !approx(r.Max[1]-r.Min[1], ButtonHeight) {
			t.Fatalf("button size changed with window width %v", width)
		}
		if !approx(r.Min[1], ButtonPadding+ButtonVerticalOffset) {
			t.Fatalf("button top edge = %v", r.Min[1])
		}
	}
}

func TestButtonClickedOnReleaseOnly(t *testing.T) {
	const width = 800
	button := ButtonRect(width)
	inside := [2]float32{(button.Min[0] + button.Max[0]) / 2, (button.Min[1] + button.Max[1]) / 2}
	outside := [2]float32{1, 1}

	type event struct {
		release bool
		pos     [2]float32
	}
	cases := []struct {
		name   string
		events []event
		clicks int
	}{
		{"press and release inside", []event{{false, inside}, {true, inside}}, 1},
		{"press inside then drag off", []event{{false, inside}, {true, outside}}, 0},
		{"press outside release inside", []event{{false, outside}, {true, inside}}, 1},
		{"press without release", []event{{false, inside}}, 0},
		{"two full clicks", []event{{false, inside}, {true, inside}, {false, outside}, {true, inside}}, 2},
	}
	for _, c := range cases {
		clicks := 0
		for _, ev := range c.events {
			if ev.release && ButtonClicked(width, ev.pos) {
				clicks++
			}
		}
		if clicks != c.clicks {
			t.Fatalf("%s: got %d clicks, want %d", c.name, clicks, c.clicks)
		}
	}
}

func TestBuildInstancePerCell(t *testing.T) {
	g := mustGrid(t, 8, 5)
	b := NewBuilder()
	b.Build(g, 800, 600, [2]float32{}, false)

	if len(b.Instances()) != 8*5 {
		t.Fatalf("got %d instances, want %d", len(b.Instances()), 8*5)
	}
	for i, inst := range b.Instances() {
		for _, v := range []float32{inst.Min[0], inst.Min[1], inst.Max[0], inst.Max[1]} {
			if v < -1.0001 || v > 1.0001 {
				t.Fatalf("instance %d coordinate %v outside normalized space", i, v)
			}
		}
		if inst.Min[0] >= inst.Max[0] {
			t.Fatalf("instance %d has non-positive width", i)
		}
		// y is flipped: pixel-space top maps to the larger normalized value.
		if inst.Min[1] <= inst.Max[1] {
			t.Fatalf("instance %d not flipped on y", i)
		}
	}
}

func TestBuildLayoutCentersSquareCells(t *testing.T) {
	// 2x2 grid in a 400x290 window: usable height 200, cell size
	// min(400/2, 200/2) = 100, horizontal slack 200 so offset 100.
	g := mustGrid(t, 2, 2)
	b := NewBuilder()
	b.Build(g, 400, 290, [2]float32{}, false)

	first := b.Instances()[0]
	wantMinX := (float32(100)/400)*2 - 1
	wantMinY := 1 - (float32(90)/290)*2
	if !approx(first.Min[0], wantMinX) || !approx(first.Min[1], wantMinY) {
		t.Fatalf("cell (0,0) min = %v, want (%v, %v)", first.Min, wantMinX, wantMinY)
	}

	// Square cells: pixel extent identical on both axes.
	dx := (first.Max[0] - first.Min[0]) / 2 * 400
	dy := (first.Min[1] - first.Max[1]) / 2 * 290
	if !approx(dx, dy) {
		t.Fatalf("cell not square: %v x %v pixels", dx, dy)
	}
}

func TestBuildCellColors(t *testing.T) {
	g := mustGrid(t, 3, 1)
	g.Set(1, 0, life.Alive)
	b := NewBuilder()
	b.Build(g, 300, 300, [2]float32{}, false)

	if b.Instances()[0].Color != deadColor {
		t.Fatalf("dead cell color = %v", b.Instances()[0].Color)
	}
	if b.Instances()[1].Color != aliveColor {
		t.Fatalf("alive cell color = %v", b.Instances()[1].Color)
	}
}

func TestBuildRebuildsFromScratch(t *testing.T) {
	g := mustGrid(t, 4, 4)
	b := NewBuilder()
	b.Build(g, 640, 480, [2]float32{}, false)
	n := len(b.Vertices())
	b.Build(g, 640, 480, [2]float32{}, false)
	if len(b.Vertices()) != n || len(b.Instances()) != 16 {
		t.Fatalf("rebuild accumulated output: %d vertices, %d instances", len(b.Vertices()), len(b.Instances()))
	}
}

func TestBuildButtonHover(t *testing.T) {
	g := mustGrid(t, 4, 4)
	b := NewBuilder()

	button := ButtonRect(800)
	inside := [2]float32{(button.Min[0] + button.Max[0]) / 2, (button.Min[1] + button.Max[1]) / 2}

	// The button quad follows the 6 header-separator vertices.
	b.Build(g, 800, 600, inside, true)
	if got := b.Vertices()[6].Color; got != buttonHoverColor {
		t.Fatalf("hovered button color = %v", got)
	}

	b.Build(g, 800, 600, [2]float32{0, 0}, true)
	if got := b.Vertices()[6].Color; got != buttonIdleColor {
		t.Fatalf("idle button color = %v", got)
	}

	// No cursor at all renders idle even if the stale position would hit.
	b.Build(g, 800, 600, inside, false)
	if got := b.Vertices()[6].Color; got != buttonIdleColor {
		t.Fatalf("cursorless button color = %v", got)
	}
}

func TestBuildVertexCount(t *testing.T) {
	g := mustGrid(t, 4, 4)
	b := NewBuilder()
	b.Build(g, 800, 600, [2]float32{}, false)

	bits := 0
	for _, s := range []string{HeadingText, ButtonLabelText} {
		for _, ch := range s {
			rows, ok := font.Glyph(ch)
			if !ok {
				continue
			}
			for _, r := range rows {
				for c := 0; c < font.GlyphWidth; c++ {
					if (r>>c)&1 == 1 {
						bits++
					}
				}
			}
		}
	}
	// Header separator + button + one quad per set glyph bit.
	want := 6 * (2 + bits)
	if len(b.Vertices()) != want {
		t.Fatalf("got %d UI vertices, want %d", len(b.Vertices()), want)
	}
}

func TestBuildTinyWindow(t *testing.T) {
	// Window shorter than the header band: the usable area is floored to one
	// pixel and cells to one pixel; the build must still emit every cell.
	g := mustGrid(t, 10, 10)
	b := NewBuilder()
	b.Build(g, 50, 40, [2]float32{}, false)
	if len(b.Instances()) != 100 {
		t.Fatalf("tiny window produced %d instances", len(b.Instances()))
	}
}
