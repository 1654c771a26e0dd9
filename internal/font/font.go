// Package font holds the fixed 5x7 bitmap glyphs used for on-screen labels.
package font

import "unicode"

// Glyph cell dimensions in font units.
const (
	GlyphWidth  = 5
	GlyphHeight = 7
)

// Advance is the cursor advance per character, including one unit of
// inter-glyph spacing.
const Advance = GlyphWidth + 1

// glyphs maps the closed set of supported letters to their row bitmaps.
// Each row uses the low 5 bits with the most significant bit as the
// leftmost column.
var glyphs = map[rune][GlyphHeight]uint8{
	'A': {0b01110, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001},
	'D': {0b11110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b11110},
	'E': {0b11111, 0b10000, 0b10000, 0b11110, 0b10000, 0b10000, 0b11111},
	'F': {0b11111, 0b10000, 0b10000, 0b11110, 0b10000, 0b10000, 0b10000},
	'G': {0b01110, 0b10001, 0b10000, 0b10111, 0b10001, 0b10001, 0b01111},
	'I': {0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b11111},
	'L': {0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b11111},
	'M': {0b10001, 0b11011, 0b10101, 0b10101, 0b10001, 0b10001, 0b10001},
	'N': {0b10001, 0b11001, 0b10101, 0b10011, 0b10001, 0b10001, 0b10001},
	'O': {0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110},
	'R': {0b11110, 0b10001, 0b10001, 0b11110, 0b10100, 0b10010, 0b10001},
	'Z': {0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b10000, 0b11111},
}

// Glyph returns the row bitmaps for ch, case-folded to upper case.
// The second result is false for characters outside the supported set.
func Glyph(ch rune) ([GlyphHeight]uint8, bool) {
	rows, ok := glyphs[unicode.ToUpper(ch)]
	return rows, ok
}

// Measure returns the width of s in font units: one advance per space or
// supported character, minus the trailing inter-glyph spacing. Characters
// outside the supported set contribute nothing to the measured width even
// though drawing advances past them.
func Measure(s string) float32 {
	units := float32(0)
	for _, ch := range s {
		if ch == ' ' {
			units += Advance
			continue
		}
		if _, ok := Glyph(ch); ok {
			units += Advance
		}
	}
	if units == 0 {
		return 0
	}
	return units - 1
}
