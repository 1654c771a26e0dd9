package scene

import (
	"golife/internal/font"
)

// MeasureText returns the pixel width of s at the given scale factor.
func MeasureText(s string, scale float32) float32 {
	return font.Measure(s) * scale
}

// TextHeight returns the pixel height of one text line at the given scale.
func TextHeight(scale float32) float32 {
	return font.GlyphHeight * scale
}

// drawText rasterizes s starting at origin, emitting one filled quad per set
// glyph bit. Characters outside the glyph table advance the cursor like a
// space but contribute no geometry.
func (b *Builder) drawText(s string, origin [2]float32, scale float32, color [3]float32) {
	cursorX := origin[0]
	for _, ch := range s {
		if ch == ' ' {
			cursorX += font.Advance * scale
			continue
		}
		if rows, ok := font.Glyph(ch); ok {
			for row, bits := range rows {
				for col := 0; col < font.GlyphWidth; col++ {
					if (bits>>(font.GlyphWidth-1-col))&1 == 0 {
						continue
					}
					b.pushRect(Rect{
						Min: [2]float32{cursorX + float32(col)*scale, origin[1] + float32(row)*scale},
						Max: [2]float32{cursorX + float32(col+1)*scale, origin[1] + float32(row+1)*scale},
					}, color)
				}
			}
		}
		cursorX += font.Advance * scale
	}
}
