package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/render"
)

// The status line takes the first screen row, the grid starts below it.
// Every cell is two columns wide: the glyph and a gap.
const (
	gridTop   = 1
	cellWidth = 2
)

// CellAt maps a screen position to the grid cell drawn there. The result
// may be outside the grid.
func CellAt(x, y int) mines.Coordinates {
	row := y - gridTop
	if row < 0 || x < 0 {
		return mines.Coordinates{Row: -1, Col: -1}
	}
	return mines.Coordinates{Row: row, Col: x / cellWidth}
}

// cellOrigin is the inverse of CellAt.
func cellOrigin(at mines.Coordinates) (x, y int) {
	return at.Col * cellWidth, at.Row + gridTop
}

func tileStyle(t mines.Tile) tcell.Style {
	style := tcell.StyleDefault
	switch {
	case t.State == mines.Hidden:
		return style.Foreground(tcell.PaletteColor(8))
	case t.State == mines.Flagged:
		return style.Foreground(tcell.PaletteColor(render.ColorFlag)).Bold(true)
	case t.IsMine():
		return style.Foreground(tcell.PaletteColor(render.ColorMine)).Bold(true)
	case t.Number > 0 && t.Number < len(render.Palette):
		return style.Foreground(tcell.PaletteColor(render.Palette[t.Number]))
	default:
		return style
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
