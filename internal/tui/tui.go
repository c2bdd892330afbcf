// Package tui is the full screen terminal front end.
//
//	arrows, hjkl   move the cursor
//	space, enter   reveal (chord on an open number)
//	f              flag
//	n              new game
//	q, esc, ctrl-c quit
//
// With mouse support the left button reveals and the right button flags.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/render"
)

type UI struct {
	screen   tcell.Screen
	log      logrus.FieldLogger
	settings mines.GameSettings
	rnd      mines.Rand

	engine  *mines.Engine
	gameId  uuid.UUID
	cursor  mines.Coordinates
	buttons tcell.ButtonMask
	message string
}

type Option func(u *UI)

func WithRand(r mines.Rand) Option {
	return func(u *UI) {
		u.rnd = r
	}
}

func New(screen tcell.Screen, logger logrus.FieldLogger, settings mines.GameSettings, opts ...Option) *UI {
	u := &UI{
		screen:   screen,
		log:      logger,
		settings: settings,
	}
	for _, opt := range opts {
		opt(u)
	}
	engineOpts := []mines.Option{mines.WithLogger(logger)}
	if u.rnd != nil {
		engineOpts = append(engineOpts, mines.WithRand(u.rnd))
	}
	u.engine = mines.New(u.drawTile, u.gameEnd, engineOpts...)
	return u
}

func (u *UI) Engine() *mines.Engine {
	return u.engine
}

func (u *UI) Cursor() mines.Coordinates {
	return u.cursor
}

func (u *UI) logger() logrus.FieldLogger {
	return u.log.WithField("game_id", u.gameId)
}

// Run takes over the screen until the player quits or ctx is done.
func (u *UI) Run(ctx context.Context) error {
	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("could not initialize screen: %w", err)
	}
	defer u.screen.Fini()
	u.screen.EnableMouse()

	if err := u.NewGame(); err != nil {
		return err
	}
	u.screen.Show()

	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		for {
			ev := u.screen.PollEvent()
			if ev == nil || u.handle(ev) {
				return nil
			}
			u.screen.Show()
		}
	})

	g.Go(func() error {
		select {
		case <-ctx.Done():
			u.logger().Info("interrupted")
			return u.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
			return nil
		}
	})

	return g.Wait()
}

// NewGame resets the board with the configured settings.
func (u *UI) NewGame() error {
	u.screen.Clear()
	u.message = ""
	if err := u.engine.Reset(u.settings.Unpack()); err != nil {
		return err
	}
	u.gameId = uuid.New()
	u.logger().WithField("settings", u.settings.String()).Info("game started")
	u.cursor = mines.Coordinates{
		Row: min(u.cursor.Row, u.engine.Height()-1),
		Col: min(u.cursor.Col, u.engine.Width()-1),
	}
	u.drawCell(u.cursor)
	u.drawStatus()
	return nil
}

// handle applies a single event and reports whether the UI should stop.
func (u *UI) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		return true
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	}
	return false
}

func (u *UI) handleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		u.moveCursor(-1, 0)
	case tcell.KeyDown:
		u.moveCursor(1, 0)
	case tcell.KeyLeft:
		u.moveCursor(0, -1)
	case tcell.KeyRight:
		u.moveCursor(0, 1)
	case tcell.KeyEnter:
		u.reveal(u.cursor)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			u.moveCursor(-1, 0)
		case 'j':
			u.moveCursor(1, 0)
		case 'h':
			u.moveCursor(0, -1)
		case 'l':
			u.moveCursor(0, 1)
		case ' ':
			u.reveal(u.cursor)
		case 'f':
			u.flag(u.cursor)
		case 'n':
			if err := u.NewGame(); err != nil {
				u.logger().WithError(err).Error("could not start a new game")
			}
		}
	}
	return false
}

// handleMouse acts when a button goes down, not while it is held.
func (u *UI) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ u.buttons
	u.buttons = buttons

	at := CellAt(ev.Position())
	if _, ok := u.engine.Tile(at); !ok {
		return
	}
	switch {
	case pressed&tcell.Button1 != 0:
		u.setCursor(at)
		u.reveal(at)
	case pressed&tcell.Button2 != 0:
		u.setCursor(at)
		u.flag(at)
	}
}

func (u *UI) moveCursor(dRow, dCol int) {
	u.setCursor(mines.Coordinates{
		Row: max(0, min(u.cursor.Row+dRow, u.engine.Height()-1)),
		Col: max(0, min(u.cursor.Col+dCol, u.engine.Width()-1)),
	})
}

func (u *UI) setCursor(at mines.Coordinates) {
	prev := u.cursor
	u.cursor = at
	u.drawCell(prev)
	u.drawCell(at)
}

func (u *UI) reveal(at mines.Coordinates) {
	u.engine.Reveal(at)
	u.drawStatus()
}

func (u *UI) flag(at mines.Coordinates) {
	u.engine.ToggleFlag(at)
	u.drawStatus()
}

func (u *UI) drawTile(tile mines.Tile, at mines.Coordinates) {
	style := tileStyle(tile)
	if at == u.cursor {
		style = style.Reverse(true)
	}
	x, y := cellOrigin(at)
	u.screen.SetContent(x, y, render.Glyph(tile), nil, style)
	u.screen.SetContent(x+1, y, ' ', nil, tcell.StyleDefault)
}

func (u *UI) drawCell(at mines.Coordinates) {
	if tile, ok := u.engine.Tile(at); ok {
		u.drawTile(tile, at)
	}
}

func (u *UI) gameEnd(phase mines.Phase) {
	switch phase {
	case mines.Won:
		u.message = "you won! n: new game, q: quit"
	case mines.Lost:
		u.message = "you lost! n: new game, q: quit"
	}
}

func (u *UI) drawStatus() {
	width, _ := u.screen.Size()
	status := fmt.Sprintf("mines: %d  flags: %d  %s",
		u.engine.Mines(), u.engine.Flags(), u.engine.Phase())
	if u.message != "" {
		status += "  " + u.message
	}
	x := drawText(u.screen, 0, 0, tcell.StyleDefault.Bold(true), status)
	for ; x < width; x++ {
		u.screen.SetContent(x, 0, ' ', nil, tcell.StyleDefault)
	}
}
