package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ModeProduction, cfg.Mode)
	assert.Equal(t, FrontendAuto, cfg.Frontend)
	assert.Equal(t, mines.GameSettings{Width: 9, Height: 9, Mines: 10}, cfg.Settings())
	assert.Zero(t, cfg.Seed)
	assert.True(t, cfg.Production())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, level)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfigFile(t, `{
		"width": 30,
		"height": 16,
		"mines": 99,
		"mode": "development",
		"log-file": "from-file.log"
	}`)
	t.Setenv("MINES_HEIGHT", "20")
	t.Setenv("MINES_LOG_FILE", "from-env.log")
	t.Setenv("MINES_SEED", "42")

	cfg, err := Load([]string{"-config", path, "-width", "24", "-log-file", "from-flag.log"})
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Width)
	assert.Equal(t, 20, cfg.Height)
	assert.Equal(t, 99, cfg.Mines)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "from-flag.log", cfg.LogFile)
	assert.True(t, cfg.Development())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"mode", []string{"-mode", "staging"}},
		{"frontend", []string{"-frontend", "gui"}},
		{"log level", []string{"-log-level", "loud"}},
		{"too many mines", []string{"-width", "3", "-height", "3", "-mines", "9"}},
		{"no width", []string{"-width", "0"}},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(test.args)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Load([]string{"-mines", "81"})
	assert.ErrorIs(t, err, mines.ErrInvalidSettings)
}

func TestLevelOverride(t *testing.T) {
	cfg, err := Load([]string{"-mode", "development", "-log-level", "warn"})
	require.NoError(t, err)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, level)
	assert.Equal(t, "warn", cfg.Fields()["log_level"])
	assert.Equal(t, "9:9:10", cfg.Fields()["settings"])
}
