//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/internal/life"
)

// GridPainter caches the grid as a single RGBA image, one pixel per cell,
// re-uploaded only when the board changes.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Update uploads the provided cells into the painter image.
func (gp *GridPainter) Update(cells []life.Cell, alive, dead color.Color) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillCellsRGBA(gp.buf, cells, alive, dead)
	gp.img.ReplacePixels(gp.buf)
}

// Draw paints the cached image scaled at the given pixel offset.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int, offsetX, offsetY float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(offsetX, offsetY)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
