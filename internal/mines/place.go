package mines

import "github.com/sirupsen/logrus"

// placeMines scatters e.mines mines uniformly over the grid, never on safe,
// and counts them into the neighbouring tiles. Reset guarantees that there
// is room for all of them.
func (e *Engine) placeMines(safe Coordinates) {
	width, height := e.Width(), e.Height()

	for placed := 0; placed < e.mines; {
		i := e.rnd.IntN(width * height)
		at := Coordinates{Row: i / width, Col: i % width}
		if at == safe || e.grid[at.Row][at.Col].IsMine() {
			continue
		}

		e.grid[at.Row][at.Col].Number = Mine
		for _, nb := range at.Neighbors() {
			if t, ok := e.grid.At(nb); ok && !t.IsMine() {
				t.Number++
			}
		}
		placed++
	}

	e.phase = InProgress

	e.log.WithFields(logrus.Fields{
		"settings": e.Settings().String(),
		"safe":     safe.String(),
	}).Debug("mines placed")
}
