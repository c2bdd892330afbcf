package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// Board keeps the last painted state of every tile. Its DrawTile method is
// meant to be passed to [mines.New].
type Board struct {
	tiles [][]mines.Tile
}

func (b *Board) DrawTile(tile mines.Tile, at mines.Coordinates) {
	if at.Row < 0 || at.Col < 0 {
		return
	}
	for len(b.tiles) <= at.Row {
		b.tiles = append(b.tiles, nil)
	}
	row := b.tiles[at.Row]
	for len(row) <= at.Col {
		row = append(row, mines.Tile{})
	}
	row[at.Col] = tile
	b.tiles[at.Row] = row
}

// Tile returns the last painted tile at c. Unpainted tiles read as hidden.
func (b *Board) Tile(at mines.Coordinates) mines.Tile {
	if at.Row < 0 || at.Row >= len(b.tiles) {
		return mines.Tile{}
	}
	row := b.tiles[at.Row]
	if at.Col < 0 || at.Col >= len(row) {
		return mines.Tile{}
	}
	return row[at.Col]
}

// Fprint writes a width x height board to w: a header of column indices
// followed by one numbered line per row. Styling is dropped when w is not a
// colour terminal.
func (b *Board) Fprint(w io.Writer, width, height int) error {
	r := lipgloss.NewRenderer(w)
	styles := newStyles(r)

	cw := len(strconv.Itoa(max(width-1, 0)))
	rw := len(strconv.Itoa(max(height-1, 0)))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", rw+1))
	for col := range width {
		fmt.Fprintf(&sb, " %*d", cw, col)
	}
	lines := make([]string, 0, height+1)
	lines = append(lines, styles.header.Render(sb.String()))
	for row := range height {
		sb.Reset()
		sb.WriteString(styles.header.Render(fmt.Sprintf("%*d ", rw, row)))
		for col := range width {
			tile := b.Tile(mines.Coordinates{Row: row, Col: col})
			sb.WriteString(strings.Repeat(" ", cw))
			sb.WriteString(styles.tile(tile).Render(string(Glyph(tile))))
		}
		lines = append(lines, sb.String())
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

type styles struct {
	header  lipgloss.Style
	hidden  lipgloss.Style
	flag    lipgloss.Style
	mine    lipgloss.Style
	empty   lipgloss.Style
	numbers [9]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	s := styles{
		header: r.NewStyle().Faint(true),
		hidden: r.NewStyle().Foreground(lipgloss.Color("8")),
		flag:   r.NewStyle().Foreground(color(ColorFlag)).Bold(true),
		mine:   r.NewStyle().Foreground(color(ColorMine)).Bold(true),
		empty:  r.NewStyle(),
	}
	for n := 1; n < len(Palette); n++ {
		s.numbers[n] = r.NewStyle().Foreground(color(Palette[n]))
	}
	return s
}

func (s styles) tile(t mines.Tile) lipgloss.Style {
	switch {
	case t.State == mines.Hidden:
		return s.hidden
	case t.State == mines.Flagged:
		return s.flag
	case t.IsMine():
		return s.mine
	case t.Number > 0 && t.Number < len(s.numbers):
		return s.numbers[t.Number]
	default:
		return s.empty
	}
}

func color(ansi int) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(ansi))
}
