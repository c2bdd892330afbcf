package render

import "github.com/vancomm/minesweeper-engine/internal/mines"

const (
	GlyphHidden  = '#'
	GlyphFlagged = 'F'
	GlyphMine    = '*'
	GlyphEmpty   = '.'
)

// Glyph is the single character a tile is drawn as.
func Glyph(t mines.Tile) rune {
	switch t.State {
	case mines.Hidden:
		return GlyphHidden
	case mines.Flagged:
		return GlyphFlagged
	}
	switch {
	case t.IsMine():
		return GlyphMine
	case t.Number == 0:
		return GlyphEmpty
	default:
		return rune('0' + t.Number)
	}
}

// Palette maps numbers 1-8 to ANSI colour indices, in the colours the
// numbers traditionally have.
var Palette = [9]int{
	1: 12, // blue
	2: 2,  // green
	3: 9,  // red
	4: 4,  // navy
	5: 1,  // maroon
	6: 6,  // teal
	7: 0,  // black
	8: 8,  // gray
}

// ColorMine and ColorFlag are the ANSI colours of mines and flags.
const (
	ColorMine = 9
	ColorFlag = 11
)
