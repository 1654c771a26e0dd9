//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"golife/internal/core"
	"golife/internal/life"
	"golife/internal/render"
	"golife/internal/scene"
)

// RGBA mirror of the scene palette for the immediate-mode front end.
var (
	backgroundColor  = color.RGBA{R: 13, G: 13, B: 18, A: 255}
	aliveColor       = color.RGBA{R: 242, G: 242, B: 242, A: 255}
	deadColor        = color.RGBA{R: 46, G: 46, B: 56, A: 255}
	headerLineColor  = color.RGBA{R: 38, G: 38, B: 51, A: 255}
	buttonIdleColor  = color.RGBA{R: 64, G: 84, B: 140, A: 255}
	buttonHoverColor = color.RGBA{R: 89, G: 115, B: 191, A: 255}
	headingColor     = color.RGBA{R: 230, G: 230, B: 242, A: 255}
	labelColor       = color.RGBA{R: 242, G: 242, B: 250, A: 255}
)

// Game adapts a shared Life board to the ebiten.Game interface. The board is
// stepped by a background goroutine; Game only reads it through the Shared
// lock and redraws the cached grid image when the board is dirty.
type Game struct {
	shared  *life.Shared
	painter *render.GridPainter
	size    core.Size
	scale   int

	pixel  *ebiten.Image
	cursor [2]float32
}

// New constructs a Game for the provided shared board.
func New(shared *life.Shared, size core.Size, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	g := &Game{
		shared:  shared,
		painter: render.NewGridPainter(size.W, size.H),
		size:    size,
		scale:   scale,
	}
	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(color.White)
	return g
}

// Update handles input. A click counts only when the primary button is
// released with the cursor inside the button rectangle; where the press
// happened is irrelevant.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.randomize()
	}

	mx, my := ebiten.CursorPosition()
	g.cursor = [2]float32{float32(mx), float32(my)}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w, _ := g.windowSize()
		if scene.ButtonClicked(float32(w), g.cursor) {
			g.randomize()
		}
	}
	return nil
}

// Draw renders the header band, the Randomize button and the grid.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	winW, _ := g.windowSize()
	headerH := float64(scene.HeaderHeight)

	g.fillRect(screen, 0, headerH-4, float64(winW), 4, headerLineColor)

	face := basicfont.Face7x13
	text.Draw(screen, scene.HeadingText, face, int(scene.ButtonPadding), int(headerH)/2+4, headingColor)

	button := g.buttonRect()
	buttonColor := buttonIdleColor
	if button.Contains(g.cursor) {
		buttonColor = buttonHoverColor
	}
	g.fillRect(screen,
		float64(button.Min[0]), float64(button.Min[1]),
		float64(button.Max[0]-button.Min[0]), float64(button.Max[1]-button.Min[1]),
		buttonColor)

	bounds := text.BoundString(face, scene.ButtonLabelText)
	labelX := int(button.Min[0]) + (int(button.Max[0]-button.Min[0])-bounds.Dx())/2
	labelY := int(button.Min[1]) + (int(button.Max[1]-button.Min[1])+bounds.Dy())/2
	text.Draw(screen, scene.ButtonLabelText, face, labelX, labelY, labelColor)

	g.shared.ConsumeDirty(func(grid *life.Grid) {
		g.painter.Update(grid.Cells(), aliveColor, deadColor)
	})
	offsetX := float64(winW-g.size.W*g.scale) / 2
	g.painter.Draw(screen, g.scale, offsetX, headerH)
}

// Layout returns the logical screen size: the grid plus the header band.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.windowSize()
}

func (g *Game) windowSize() (int, int) {
	return g.size.W * g.scale, int(scene.HeaderHeight) + g.size.H*g.scale
}

func (g *Game) buttonRect() scene.Rect {
	w, _ := g.windowSize()
	return scene.ButtonRect(float32(w))
}

func (g *Game) randomize() {
	g.shared.Reset(time.Now().UnixNano())
}

func (g *Game) fillRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(g.pixel, op)
}
