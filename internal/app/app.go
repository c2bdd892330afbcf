package app

import (
	"context"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/console"
	"github.com/vancomm/minesweeper-engine/internal/tui"
)

type App struct {
	logger   *logrus.Logger
	cfg      *config.Config
	in       io.Reader
	out      io.Writer
	frontend string
	screen   tcell.Screen
}

type Option func(a *App)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

// WithScreen sets the screen used by the tui front end.
func WithScreen(screen tcell.Screen) Option {
	return func(a *App) {
		a.screen = screen
	}
}

func New(logger *logrus.Logger, cfg *config.Config, opts ...Option) *App {
	a := &App{
		logger: logger,
		cfg:    cfg,
		in:     os.Stdin,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.frontend = resolveFrontend(cfg.Frontend, a.in, a.out)
	return a
}

// resolveFrontend picks the full screen UI for "auto" when both ends are
// terminals.
func resolveFrontend(frontend string, in io.Reader, out io.Writer) string {
	if frontend != config.FrontendAuto {
		return frontend
	}
	if isTerminal(in) && isTerminal(out) {
		return config.FrontendTUI
	}
	return config.FrontendLine
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *App) Frontend() string {
	return a.frontend
}

// LogOutput is where terminal logs may go without getting in the way of
// the game.
func (a *App) LogOutput() io.Writer {
	if a.frontend == config.FrontendTUI {
		return io.Discard
	}
	return os.Stderr
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// Start runs the configured front end until the player quits or ctx is
// done.
func (a *App) Start(ctx context.Context) error {
	settings := a.cfg.Settings()
	rnd := createRand(a.cfg.Seed)

	a.logger.WithFields(logrus.Fields{
		"frontend": a.frontend,
		"settings": settings.String(),
	}).Info("starting game")

	switch a.frontend {
	case config.FrontendTUI:
		screen := a.screen
		if screen == nil {
			var err error
			if screen, err = tcell.NewScreen(); err != nil {
				return fmt.Errorf("unable to open screen: %w", err)
			}
		}
		ui := tui.New(screen, a.logger, settings, tui.WithRand(rnd))
		return ui.Run(ctx)
	case config.FrontendLine:
		s := console.NewSession(a.in, a.out, a.logger, settings, console.WithRand(rnd))
		return s.Run(ctx)
	}
	return fmt.Errorf("%w: unknown frontend %q", config.ErrInvalidConfig, a.frontend)
}
