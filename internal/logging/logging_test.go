package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-engine/internal/config"
)

func TestSetupLevelAndOutput(t *testing.T) {
	log := logrus.New()
	var out bytes.Buffer
	cfg := &config.Config{Mode: config.ModeProduction}

	require.NoError(t, Setup(log, cfg, &out))

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.Debug("hidden")
	log.WithField("game_id", "abc").Info("shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "game_id=abc")
}

func TestSetupDevelopmentIsVerbose(t *testing.T) {
	log := logrus.New()
	cfg := &config.Config{Mode: config.ModeDevelopment}

	require.NoError(t, Setup(log, cfg, io.Discard))

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestSetupLogFile(t *testing.T) {
	log := logrus.New()
	path := filepath.Join(t.TempDir(), "mines.log")
	cfg := &config.Config{Mode: config.ModeProduction, LogLevel: "warn", LogFile: path}

	require.NoError(t, Setup(log, cfg, io.Discard))

	log.Info("not written")
	log.WithField("phase", "lost").Warn("game over")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "game over", entry["msg"])
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "lost", entry["phase"])
}

func TestSetupBadLevel(t *testing.T) {
	log := logrus.New()
	cfg := &config.Config{Mode: config.ModeProduction, LogLevel: "chatty"}

	assert.Error(t, Setup(log, cfg, io.Discard))
}
