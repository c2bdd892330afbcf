package config

import (
	"errors"
	"flag"
	"fmt"
	"slices"

	"github.com/peterbourgon/ff/v3"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	FrontendAuto = "auto"
	FrontendTUI  = "tui"
	FrontendLine = "line"

	EnvVarPrefix = "MINES"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Mode     string
	Frontend string
	Width    int
	Height   int
	Mines    int
	Seed     uint64
	LogLevel string
	LogFile  string
}

func newFlagSet(cfg *Config) *flag.FlagSet {
	fs := flag.NewFlagSet("mines", flag.ContinueOnError)
	fs.String("config", "", "config file path (JSON)")
	fs.StringVar(&cfg.Mode, "mode", ModeProduction, "development or production")
	fs.StringVar(&cfg.Frontend, "frontend", FrontendAuto, "auto, tui or line")
	fs.IntVar(&cfg.Width, "width", 9, "board width")
	fs.IntVar(&cfg.Height, "height", 9, "board height")
	fs.IntVar(&cfg.Mines, "mines", 10, "number of mines")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed, 0 picks one")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level (default depends on mode)")
	fs.StringVar(&cfg.LogFile, "log-file", "", "also write JSON logs to this rotated file")
	return fs
}

// Load reads the configuration from command line arguments, MINES_*
// environment variables and the JSON file named by -config, in that order
// of precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	fs := newFlagSet(cfg)
	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix(EnvVarPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !slices.Contains([]string{ModeDevelopment, ModeProduction}, c.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if !slices.Contains([]string{FrontendAuto, FrontendTUI, FrontendLine}, c.Frontend) {
		return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, c.Frontend)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (c Config) Settings() mines.GameSettings {
	return mines.GameSettings{Width: c.Width, Height: c.Height, Mines: c.Mines}
}

// Level is the configured log level, or debug in development and info in
// production when none is set.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel != "" {
		return logrus.ParseLevel(c.LogLevel)
	}
	if c.Development() {
		return logrus.DebugLevel, nil
	}
	return logrus.InfoLevel, nil
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":      c.Mode,
		"frontend":  c.Frontend,
		"settings":  c.Settings().String(),
		"seed":      c.Seed,
		"log_level": c.LogLevel,
		"log_file":  c.LogFile,
	}
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}
