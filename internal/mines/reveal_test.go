package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 3x3 board with its single mine in the bottom right corner:
//
//	0 0 0
//	0 1 1
//	0 1 *
func newCornerMineGame(t *testing.T) (*Engine, *recorder) {
	t.Helper()
	e, rec := newRecordedEngine(WithRand(script(8)))
	require.NoError(t, e.Reset(3, 3, 1))
	rec.forget()
	return e, rec
}

func TestRevealZeroCornerWins(t *testing.T) {
	e, rec := newCornerMineGame(t)

	e.Reveal(at(0, 0))

	assert.Equal(t, Won, e.Phase())
	assert.Equal(t, 8, e.Revealed())
	assert.Equal(t, []Phase{Won}, rec.ends)
	assert.Len(t, rec.draws, 8)

	for row := range 3 {
		for col := range 3 {
			tile, _ := e.Tile(at(row, col))
			if row == 2 && col == 2 {
				assert.Equal(t, Tile{Number: Mine, State: Hidden}, tile)
			} else {
				assert.Equal(t, Visible, tile.State, "tile %d:%d", row, col)
			}
		}
	}
	assert.Equal(t, "0 0 0\n0 1 1\n0 1 *\n", e.grid.String())
}

func TestRevealMineLoses(t *testing.T) {
	e, rec := newCornerMineGame(t)

	// the first click is always safe, so the mine can only be hit later
	e.Reveal(at(1, 1))
	require.Equal(t, InProgress, e.Phase())
	require.Empty(t, rec.ends)

	e.Reveal(at(2, 2))

	tile, _ := e.Tile(at(2, 2))
	assert.Equal(t, Tile{Number: Mine, State: Visible}, tile)
	assert.Equal(t, Lost, e.Phase())
	assert.Equal(t, 2, e.Revealed())
	assert.Equal(t, []Phase{Lost}, rec.ends)
}

func TestRevealFlaggedTile(t *testing.T) {
	e, rec := newCornerMineGame(t)
	e.ToggleFlag(at(0, 0))
	rec.forget()

	e.Reveal(at(0, 0))

	tile, _ := e.Tile(at(0, 0))
	assert.Equal(t, Flagged, tile.State)
	assert.Equal(t, 1, e.Flags())
	assert.Equal(t, 0, e.Revealed())
	assert.Empty(t, rec.draws)
	assert.Empty(t, rec.ends)
	// a flagged first click does not start the game
	assert.Equal(t, NotInitialized, e.Phase())
	assert.Len(t, *e.rnd.(*scriptedRand), 1)
}

func TestRevealOutOfBounds(t *testing.T) {
	e, rec := newCornerMineGame(t)

	for _, c := range []Coordinates{at(-1, 0), at(0, -1), at(3, 0), at(0, 3), at(7, 7)} {
		e.Reveal(c)
	}

	assert.Equal(t, NotInitialized, e.Phase())
	assert.Equal(t, 0, e.Revealed())
	assert.Empty(t, rec.draws)
	assert.Empty(t, rec.ends)
}

func TestRevealNumberedTileAlone(t *testing.T) {
	e, rec := newCornerMineGame(t)

	e.Reveal(at(1, 2))

	assert.Equal(t, map[Coordinates]bool{at(1, 2): true}, visible(e))
	assert.Equal(t, []draw{{Tile{Number: 1, State: Visible}, at(1, 2)}}, rec.draws)
	assert.Equal(t, InProgress, e.Phase())
}

func TestRevealVisibleTileTwice(t *testing.T) {
	e, rec := newCornerMineGame(t)
	e.Reveal(at(1, 2))
	rec.forget()

	e.Reveal(at(1, 2))

	assert.Equal(t, 1, e.Revealed())
	assert.Empty(t, rec.draws)
}

func TestLossWinsOverWin(t *testing.T) {
	// 1x3 strip: . 1 *
	e, rec := newRecordedEngine(WithRand(script(2)))
	require.NoError(t, e.Reset(3, 1, 1))

	e.Reveal(at(0, 1))
	require.Equal(t, InProgress, e.Phase())

	// mines + revealed == cells after this, but the mine was hit
	e.Reveal(at(0, 2))

	assert.Equal(t, 3, e.Mines()+e.Revealed())
	assert.Equal(t, Lost, e.Phase())
	assert.Equal(t, []Phase{Lost}, rec.ends)
}

func TestChord(t *testing.T) {
	t.Run("not enough flags", func(t *testing.T) {
		e, rec := newCornerMineGame(t)
		e.Reveal(at(1, 1))
		rec.forget()

		e.Reveal(at(1, 1))

		assert.Equal(t, 1, e.Revealed())
		assert.Empty(t, rec.draws)
		assert.Equal(t, InProgress, e.Phase())
	})

	t.Run("too many flags", func(t *testing.T) {
		e, rec := newCornerMineGame(t)
		e.Reveal(at(1, 1))
		e.ToggleFlag(at(2, 2))
		e.ToggleFlag(at(0, 0))
		rec.forget()

		e.Reveal(at(1, 1))

		assert.Equal(t, 1, e.Revealed())
		assert.Empty(t, rec.draws)
	})

	t.Run("satisfied", func(t *testing.T) {
		e, rec := newCornerMineGame(t)
		e.Reveal(at(1, 1))
		e.ToggleFlag(at(2, 2))
		rec.forget()

		e.Reveal(at(1, 1))

		assert.Equal(t, 8, e.Revealed())
		assert.Len(t, rec.draws, 7)
		tile, _ := e.Tile(at(2, 2))
		assert.Equal(t, Flagged, tile.State)
		assert.Equal(t, Won, e.Phase())
		assert.Equal(t, []Phase{Won}, rec.ends)
	})

	t.Run("wrong flag", func(t *testing.T) {
		e, rec := newCornerMineGame(t)
		e.Reveal(at(1, 1))
		e.ToggleFlag(at(0, 0))
		rec.forget()

		e.Reveal(at(1, 1))

		tile, _ := e.Tile(at(2, 2))
		assert.Equal(t, Visible, tile.State)
		assert.Equal(t, Lost, e.Phase())
		assert.Equal(t, []Phase{Lost}, rec.ends)
	})

	t.Run("zero tile", func(t *testing.T) {
		// 1x6 strip: 0 0 1 * 2 *
		e, rec := newRecordedEngine(WithRand(script(3, 5)))
		require.NoError(t, e.Reset(6, 1, 2))
		e.Reveal(at(0, 0))
		require.Equal(t, 3, e.Revealed())
		require.Equal(t, InProgress, e.Phase())
		rec.forget()

		e.Reveal(at(0, 0))

		assert.Equal(t, 3, e.Revealed())
		assert.Empty(t, rec.draws)
	})
}

// expectedFlood walks zero tiles from start and collects them together with
// their border, independently of the engine.
func expectedFlood(e *Engine, start Coordinates) map[Coordinates]bool {
	seen := map[Coordinates]bool{start: true}
	queue := []Coordinates{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		tile, _ := e.Tile(c)
		if tile.Number != 0 {
			continue
		}
		for _, nb := range c.Neighbors() {
			if _, ok := e.Tile(nb); ok && !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return seen
}

func TestFloodRevealsZeroRegionAndBorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings GameSettings
	}{
		{"9x9(10)", GameSettings{9, 9, 10}},
		{"16x16(40)", GameSettings{16, 16, 40}},
		{"30x16(99)", GameSettings{30, 16, 99}},
		{"40x1(5)", GameSettings{40, 1, 5}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			w, h, m := test.settings.Unpack()
			for range 20 {
				e, _ := newRecordedEngine(WithRand(r))
				require.NoError(t, e.Reset(w, h, m))
				start := at(r.IntN(h), r.IntN(w))

				e.Reveal(start)

				want := expectedFlood(e, start)
				assert.Equal(t, want, visible(e), "start %s\n%s", start, e.grid)
				assert.Equal(t, len(want), e.Revealed())
				assert.NotEqual(t, Lost, e.Phase())
			}
		})
	}
}

func TestFloodHugeOpenBoard(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	// one mine in a corner of a large board: the whole rest opens in one go
	const side = 1000
	e, rec := newRecordedEngine(WithRand(script(side*side - 1)))
	require.NoError(t, e.Reset(side, side, 1))
	rec.forget()

	e.Reveal(at(0, 0))

	assert.Equal(t, side*side-1, e.Revealed())
	assert.Equal(t, Won, e.Phase())
	assert.Len(t, rec.draws, side*side-1)
}
