package mines

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Rand is the source of randomness used for mine placement.
// [*rand.Rand] satisfies it.
type Rand interface {
	IntN(n int) int
}

// DrawTileFunc is called whenever the tile at the given coordinates needs
// to be painted again.
type DrawTileFunc func(tile Tile, at Coordinates)

// GameEndFunc is called once per game, when it is won or lost.
type GameEndFunc func(phase Phase)

type Option func(e *Engine)

func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rnd = r
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

/*
Engine owns the state of a single minesweeper game.

It is driven synchronously through [Engine.Reset], [Engine.Reveal] and
[Engine.ToggleFlag] and reports changes through the callbacks passed to
[New]. Callbacks run inside those calls and must not call back into them.
An Engine is not safe for concurrent use.
*/
type Engine struct {
	grid     Grid
	mines    int
	flags    int
	revealed int
	phase    Phase

	drawTile  DrawTileFunc
	onGameEnd GameEndFunc

	rnd Rand
	log logrus.FieldLogger
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// New creates an engine with an empty grid. Either callback may be nil.
// Call [Engine.Reset] to start a game.
func New(drawTile DrawTileFunc, onGameEnd GameEndFunc, opts ...Option) *Engine {
	e := &Engine{
		drawTile:  drawTile,
		onGameEnd: onGameEnd,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.drawTile == nil {
		e.drawTile = func(Tile, Coordinates) {}
	}
	if e.onGameEnd == nil {
		e.onGameEnd = func(Phase) {}
	}
	if e.rnd == nil {
		e.rnd = newRand()
	}
	if e.log == nil {
		e.log = Log
	}
	return e
}

// Reset starts a new game on a fresh width x height grid and paints every
// tile. Mines are not placed until the first reveal. Invalid settings are
// rejected with [ErrInvalidSettings] and leave the current game untouched.
func (e *Engine) Reset(width, height, mines int) error {
	settings := GameSettings{Width: width, Height: height, Mines: mines}
	if err := settings.Validate(); err != nil {
		return err
	}

	e.grid = newGrid(width, height)
	e.mines = mines
	e.flags = 0
	e.revealed = 0
	e.phase = NotInitialized

	e.log.WithFields(logrus.Fields{
		"settings": settings.String(),
	}).Debug("new game")

	e.drawGrid()
	return nil
}

func (e *Engine) drawGrid() {
	for row := range e.grid {
		for col := range e.grid[row] {
			e.drawTile(e.grid[row][col], Coordinates{row, col})
		}
	}
}

// ToggleFlag flags a hidden tile or unflags a flagged one. Visible tiles
// stay as they are. Out-of-bounds coordinates and finished games are
// ignored.
func (e *Engine) ToggleFlag(at Coordinates) {
	if e.phase.Ended() {
		return
	}
	tile, ok := e.grid.At(at)
	if !ok {
		return
	}

	switch tile.State {
	case Hidden:
		tile.State = Flagged
		e.flags++
	case Flagged:
		tile.State = Hidden
		e.flags--
	}

	e.drawTile(*tile, at)
}

func (e *Engine) Width() int {
	return e.grid.Width()
}

func (e *Engine) Height() int {
	return e.grid.Height()
}

func (e *Engine) Mines() int {
	return e.mines
}

func (e *Engine) Flags() int {
	return e.flags
}

func (e *Engine) Revealed() int {
	return e.revealed
}

func (e *Engine) Phase() Phase {
	return e.phase
}

func (e *Engine) Settings() GameSettings {
	return GameSettings{Width: e.Width(), Height: e.Height(), Mines: e.mines}
}

// Tile returns a copy of the tile at c.
func (e *Engine) Tile(at Coordinates) (Tile, bool) {
	t, ok := e.grid.At(at)
	if !ok {
		return Tile{}, false
	}
	return *t, true
}
