// Package scene turns grid state and window geometry into renderer-facing
// primitives: one colored rectangle instance per cell plus triangle vertices
// for the header, the Randomize button and its bitmap-font labels. All output
// is in normalized device coordinates spanning [-1, 1] on both axes.
package scene

import (
	"golife/internal/life"
)

// Pixel-space layout constants for the header band and the button anchored to
// the top-right corner.
const (
	HeaderHeight         float32 = 90
	ButtonWidth          float32 = 180
	ButtonHeight         float32 = 44
	ButtonPadding        float32 = 24
	ButtonVerticalOffset float32 = 12

	headingTextScale float32 = 10
	buttonTextScale  float32 = 8
)

// On-screen labels.
const (
	HeadingText     = "Game of Life"
	ButtonLabelText = "Randomize"
)

var (
	aliveColor       = [3]float32{0.95, 0.95, 0.95}
	deadColor        = [3]float32{0.18, 0.18, 0.22}
	headerLineColor  = [3]float32{0.15, 0.15, 0.2}
	buttonIdleColor  = [3]float32{0.25, 0.33, 0.55}
	buttonHoverColor = [3]float32{0.35, 0.45, 0.75}
	headingColor     = [3]float32{0.9, 0.9, 0.95}
	buttonTextColor  = [3]float32{0.95, 0.95, 0.98}
)

// Vertex is a single UI point in normalized coordinates; six of them form one
// filled rectangle.
type Vertex struct {
	Pos   [2]float32
	Color [3]float32
}

// CellInstance is one axis-aligned cell rectangle in normalized coordinates.
// The layout (min, max, color, pad) matches the instanced vertex buffer the
// grid pipeline consumes.
type CellInstance struct {
	Min   [2]float32
	Max   [2]float32
	Color [3]float32
	_     float32
}

// Rect is an axis-aligned rectangle in screen pixel space.
type Rect struct {
	Min [2]float32
	Max [2]float32
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p [2]float32) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] && p[1] >= r.Min[1] && p[1] <= r.Max[1]
}

// ButtonRect returns the Randomize button rectangle for the given window
// width. The button keeps its fixed size and padding and follows the
// top-right corner as the window resizes.
func ButtonRect(windowWidth float32) Rect {
	if windowWidth < 1 {
		windowWidth = 1
	}
	return Rect{
		Min: [2]float32{windowWidth - ButtonPadding - ButtonWidth, ButtonPadding + ButtonVerticalOffset},
		Max: [2]float32{windowWidth - ButtonPadding, ButtonPadding + ButtonVerticalOffset + ButtonHeight},
	}
}

// ButtonClicked reports whether releasing the primary button at release
// counts as a click on the Randomize button for a window of the given pixel
// width. Only the release position matters: a press on the button followed by
// a drag off does not trigger, and a press outside followed by a release
// inside does.
func ButtonClicked(windowWidth float32, release [2]float32) bool {
	return ButtonRect(windowWidth).Contains(release)
}

// Builder rebuilds the cell instance and UI vertex streams each frame. The
// backing slices are reused between frames; the previous frame's output is
// invalid once Build is called again.
type Builder struct {
	instances []CellInstance
	vertices  []Vertex

	winW float32
	winH float32
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		vertices: make([]Vertex, 0, 2048),
	}
}

// Instances returns the cell rectangles produced by the last Build.
func (b *Builder) Instances() []CellInstance { return b.instances }

// Vertices returns the UI triangle vertices produced by the last Build.
func (b *Builder) Vertices() []Vertex { return b.vertices }

// Build lays out the grid and the header UI for a window of the given pixel
// size. cursor is the last known cursor position in pixels; hasCursor is
// false when the pointer has not entered the window yet. The grid is only
// read; callers sharing it across goroutines must hold their lock around the
// whole call.
func (b *Builder) Build(g *life.Grid, width, height float32, cursor [2]float32, hasCursor bool) {
	b.instances = b.instances[:0]
	b.vertices = b.vertices[:0]

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b.winW = width
	b.winH = height

	size := g.Size()
	gridW := float32(size.W)
	gridH := float32(size.H)

	usableHeight := height - HeaderHeight
	if usableHeight < 1 {
		usableHeight = 1
	}
	cellSize := width / gridW
	if h := usableHeight / gridH; h < cellSize {
		cellSize = h
	}
	if cellSize < 1 {
		cellSize = 1
	}
	offsetX := (width - cellSize*gridW) * 0.5
	offsetY := HeaderHeight + (usableHeight-cellSize*gridH)*0.5

	cells := g.Cells()
	for row := 0; row < size.H; row++ {
		y := offsetY + float32(row)*cellSize
		for col := 0; col < size.W; col++ {
			x := offsetX + float32(col)*cellSize
			color := deadColor
			if cells[row*size.W+col] == life.Alive {
				color = aliveColor
			}
			b.instances = append(b.instances, CellInstance{
				Min:   [2]float32{b.ndcX(x), b.ndcY(y)},
				Max:   [2]float32{b.ndcX(x + cellSize), b.ndcY(y + cellSize)},
				Color: color,
			})
		}
	}

	b.pushRect(Rect{
		Min: [2]float32{0, HeaderHeight - 4},
		Max: [2]float32{width, HeaderHeight},
	}, headerLineColor)

	button := ButtonRect(width)
	buttonColor := buttonIdleColor
	if hasCursor && button.Contains(cursor) {
		buttonColor = buttonHoverColor
	}
	b.pushRect(button, buttonColor)

	b.drawText(HeadingText, [2]float32{ButtonPadding, ButtonPadding}, headingTextScale, headingColor)

	labelWidth := MeasureText(ButtonLabelText, buttonTextScale)
	labelHeight := TextHeight(buttonTextScale)
	origin := [2]float32{
		button.Min[0] + (button.Max[0]-button.Min[0]-labelWidth)*0.5,
		button.Min[1] + (button.Max[1]-button.Min[1]-labelHeight)*0.5,
	}
	b.drawText(ButtonLabelText, origin, buttonTextScale, buttonTextColor)
}

// ndcX maps a pixel x coordinate to [-1, 1].
func (b *Builder) ndcX(x float32) float32 {
	return (x/b.winW)*2 - 1
}

// ndcY maps a pixel y coordinate to [1, -1]; screen y grows downward, the
// target space grows upward.
func (b *Builder) ndcY(y float32) float32 {
	return 1 - (y/b.winH)*2
}

// pushRect appends the six vertices of a filled pixel-space rectangle.
func (b *Builder) pushRect(r Rect, color [3]float32) {
	x0 := b.ndcX(r.Min[0])
	y0 := b.ndcY(r.Min[1])
	x1 := b.ndcX(r.Max[0])
	y1 := b.ndcY(r.Max[1])

	b.vertices = append(b.vertices,
		Vertex{Pos: [2]float32{x0, y1}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x0, y0}, Color: color},
		Vertex{Pos: [2]float32{x0, y0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, Color: color},
	)
}
