package mines

import "github.com/sirupsen/logrus"

/*
Reveal opens the tile at the given coordinates.

The first reveal of a game places the mines, keeping the revealed tile
safe. A hidden tile is flood-revealed; a visible numbered tile whose
flagged neighbours match its number reveals all its hidden neighbours
(chording). Flagged and out-of-bounds tiles are left alone, as is any tile
once the game has ended.
*/
func (e *Engine) Reveal(at Coordinates) {
	if e.phase.Ended() {
		return
	}
	tile, ok := e.grid.At(at)
	if !ok || tile.State == Flagged {
		return
	}

	if e.phase == NotInitialized {
		e.placeMines(at)
	}

	switch tile.State {
	case Visible:
		e.chord(at, *tile)
	case Hidden:
		e.flood(at)
	}

	e.checkGameEnd()
}

func (e *Engine) chord(at Coordinates, tile Tile) {
	if tile.Number <= 0 {
		return
	}
	flagged := e.grid.countNeighbors(at, func(t Tile) bool {
		return t.State == Flagged
	})
	if flagged != tile.Number {
		return
	}

	hidden := make([]Coordinates, 0, 8)
	for _, nb := range at.Neighbors() {
		if t, ok := e.grid.At(nb); ok && t.State == Hidden {
			hidden = append(hidden, nb)
		}
	}
	e.flood(hidden...)
}

// flood reveals the tiles in todo and keeps expanding through tiles with
// no adjacent mines. It uses an explicit stack so that grid size does not
// bound call depth. Revealing a mine loses the game but does not stop the
// flood.
func (e *Engine) flood(todo ...Coordinates) {
	stack := todo
	for len(stack) > 0 {
		at := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tile, ok := e.grid.At(at)
		if !ok || tile.State != Hidden {
			continue
		}

		if tile.IsMine() {
			e.phase = Lost
		}

		tile.State = Visible
		e.drawTile(*tile, at)
		e.revealed++

		if tile.Number == 0 {
			nbs := at.Neighbors()
			stack = append(stack, nbs[:]...)
		}
	}
}

func (e *Engine) checkGameEnd() {
	switch {
	case e.phase == Lost:
	case e.mines+e.revealed == e.Width()*e.Height():
		e.phase = Won
	default:
		return
	}

	e.log.WithFields(logrus.Fields{
		"settings": e.Settings().String(),
		"revealed": e.revealed,
		"flags":    e.flags,
		"phase":    e.phase.String(),
	}).Info("game over")

	e.onGameEnd(e.phase)
}
