// Package console plays a game over a pair of text streams, one command
// line at a time.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/render"
)

type Session struct {
	in  io.Reader
	out io.Writer
	log logrus.FieldLogger

	settings mines.GameSettings
	rnd      mines.Rand

	board  *render.Board
	engine *mines.Engine
	gameId uuid.UUID
}

type Option func(s *Session)

func WithRand(r mines.Rand) Option {
	return func(s *Session) {
		s.rnd = r
	}
}

func NewSession(
	in io.Reader, out io.Writer, logger logrus.FieldLogger,
	settings mines.GameSettings, opts ...Option,
) *Session {
	s := &Session{
		in:       in,
		out:      out,
		log:      logger,
		settings: settings,
		board:    &render.Board{},
	}
	for _, opt := range opts {
		opt(s)
	}
	engineOpts := []mines.Option{mines.WithLogger(logger)}
	if s.rnd != nil {
		engineOpts = append(engineOpts, mines.WithRand(s.rnd))
	}
	s.engine = mines.New(s.drawTile, s.gameEnd, engineOpts...)
	return s
}

func (s *Session) Engine() *mines.Engine {
	return s.engine
}

func (s *Session) drawTile(tile mines.Tile, at mines.Coordinates) {
	s.board.DrawTile(tile, at)
}

func (s *Session) gameEnd(phase mines.Phase) {
	switch phase {
	case mines.Won:
		fmt.Fprintln(s.out, "you won")
	case mines.Lost:
		fmt.Fprintln(s.out, "you lost")
	}
}

// logger carries the id of the current game. Every reset gets a new one.
func (s *Session) logger() logrus.FieldLogger {
	return s.log.WithField("game_id", s.gameId)
}

// Reset starts a new game under a new id. Together with Reveal, ToggleFlag
// and Tile it lets commands drive the session in place of the bare engine.
func (s *Session) Reset(width, height, mineCount int) error {
	if err := s.engine.Reset(width, height, mineCount); err != nil {
		return err
	}
	s.gameId = uuid.New()
	s.logger().WithField("settings", s.engine.Settings().String()).Info("game started")
	return nil
}

func (s *Session) Reveal(at mines.Coordinates) {
	s.engine.Reveal(at)
}

func (s *Session) ToggleFlag(at mines.Coordinates) {
	s.engine.ToggleFlag(at)
}

func (s *Session) Tile(at mines.Coordinates) (mines.Tile, bool) {
	return s.engine.Tile(at)
}

func (s *Session) printBoard() error {
	if err := s.board.Fprint(s.out, s.engine.Width(), s.engine.Height()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.out, "mines: %d, flags: %d, %s\n",
		s.engine.Mines(), s.engine.Flags(), s.engine.Phase())
	return err
}

// Run starts a game with the session settings and executes input lines
// until the input ends, a quit command is read or ctx is done. Bad commands
// are reported on the output and do not end the session.
func (s *Session) Run(ctx context.Context) error {
	if err := s.Reset(s.settings.Unpack()); err != nil {
		return err
	}
	if err := s.printBoard(); err != nil {
		return err
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger().Info("session interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				s.logger().Debug("input closed")
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			quit, err := s.execute(line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func (s *Session) execute(line string) (quit bool, err error) {
	cmdErr := commands.ExecuteLine(s, line)
	if errors.Is(cmdErr, commands.ErrQuit) {
		s.logger().Info("quit")
		return true, nil
	}
	if cmdErr != nil {
		s.logger().WithError(cmdErr).Warn("bad command")
		if _, err := fmt.Fprintln(s.out, "error:", cmdErr); err != nil {
			return false, err
		}
	}
	return false, s.printBoard()
}
