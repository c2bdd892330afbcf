package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper-engine/internal/config"
)

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

// Setup configures log from cfg. Terminal output goes to out; pass
// [io.Discard] when the terminal belongs to the game screen. A configured
// log file receives every entry as JSON and is rotated by size.
func Setup(log *logrus.Logger, cfg *config.Config, out io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development()})

	if cfg.LogFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file %s: %w", cfg.LogFile, err)
	}
	log.AddHook(hook)
	return nil
}
