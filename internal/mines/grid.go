package mines

import (
	"strconv"
	"strings"
)

// Grid is a height x width matrix of tiles indexed as grid[row][col].
type Grid [][]Tile

func newGrid(width, height int) Grid {
	grid := make(Grid, height)
	for row := range grid {
		grid[row] = make([]Tile, width)
	}
	return grid
}

func (g Grid) Height() int {
	return len(g)
}

func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) InBounds(c Coordinates) bool {
	return 0 <= c.Row && c.Row < g.Height() &&
		0 <= c.Col && c.Col < g.Width()
}

// At returns the tile at c, or false if c lies outside the grid. The
// pointer aliases the grid.
func (g Grid) At(c Coordinates) (*Tile, bool) {
	if !g.InBounds(c) {
		return nil, false
	}
	return &g[c.Row][c.Col], true
}

func (g Grid) countNeighbors(c Coordinates, pred func(Tile) bool) int {
	n := 0
	for _, nb := range c.Neighbors() {
		if t, ok := g.At(nb); ok && pred(*t) {
			n++
		}
	}
	return n
}

// String dumps the grid regardless of tile state: '*' for mines, digits
// for everything else. Meant for logs and test failures.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for col, t := range row {
			if col > 0 {
				b.WriteByte(' ')
			}
			if t.IsMine() {
				b.WriteByte('*')
			} else {
				b.WriteString(strconv.Itoa(t.Number))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
