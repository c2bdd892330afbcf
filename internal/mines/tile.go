package mines

import "strconv"

// Mine is the Number of a tile that holds a mine.
const Mine = -1

type TileState uint8

const (
	Hidden TileState = iota
	Visible
	Flagged
)

func (s TileState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case Flagged:
		return "flagged"
	default:
		return "TileState(" + strconv.Itoa(int(s)) + ")"
	}
}

/*
Tile is a single square of the grid.

Number is [Mine] for a mined tile, otherwise the count of mines among the
(up to 8) neighbours. It is fixed once mines are placed.
*/
type Tile struct {
	Number int
	State  TileState
}

func (t Tile) IsMine() bool {
	return t.Number == Mine
}

// Coordinates address a tile by row and column, origin at the top left.
type Coordinates struct {
	Row, Col int
}

func (c Coordinates) String() string {
	return strconv.Itoa(c.Row) + ":" + strconv.Itoa(c.Col)
}

// Neighbors returns the 8 surrounding coordinates. Some of them may lie
// outside the grid; lookups of those yield nothing.
func (c Coordinates) Neighbors() [8]Coordinates {
	return [8]Coordinates{
		{c.Row - 1, c.Col - 1},
		{c.Row - 1, c.Col},
		{c.Row - 1, c.Col + 1},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
		{c.Row + 1, c.Col - 1},
		{c.Row + 1, c.Col},
		{c.Row + 1, c.Col + 1},
	}
}
