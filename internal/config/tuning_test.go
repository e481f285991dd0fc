package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
}

func TestLoadTuningOverridesDefaults(t *testing.T) {
	path := writeTuning(t, `
[player]
max_velocity = 25.0

[enemy]
cap = 5
`)
	got, err := LoadTuning(path)
	require.NoError(t, err)

	want := DefaultTuning()
	want.Player.MaxVelocity = 25
	want.Enemy.Cap = 5
	assert.Equal(t, want, got)
}

func TestLoadTuningRejectsUnknownKeys(t *testing.T) {
	path := writeTuning(t, `
[bullet]
sped = 40.0
`)
	_, err := LoadTuning(path)
	require.ErrorIs(t, err, ErrInvalidTuning)
	assert.Contains(t, err.Error(), "bullet.sped")
}

func TestLoadTuningRejectsBadValues(t *testing.T) {
	path := writeTuning(t, `
[bullet]
lifetime = 0.0
`)
	_, err := LoadTuning(path)
	require.ErrorIs(t, err, ErrInvalidTuning)
	assert.Contains(t, err.Error(), "bullet.lifetime")
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTuning)
}

func TestLoadTuningSyntaxError(t *testing.T) {
	path := writeTuning(t, "[player\nmax_velocity = ")
	_, err := LoadTuning(path)
	require.Error(t, err)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("OCTOSHOT_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("OCTOSHOT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("OCTOSHOT_TEST_MISSING", "fallback"))
}

func TestTuningFromEnv(t *testing.T) {
	t.Setenv(EnvTuningFile, "")
	got, err := TuningFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), got)

	t.Setenv(EnvTuningFile, writeTuning(t, "[arena]\nhalf_width = 320.0\n"))
	got, err = TuningFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 320.0, got.Arena.HalfWidth)
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "test")
	require.NoError(t, err)

	logger.Debug("hello", "n", 1)
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "n=1")
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "chatty")
	_, err := NewLogger(io.Discard, "test")
	assert.Error(t, err)
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	t.Setenv(EnvLogFile, path)
	t.Setenv(EnvLogLevel, "")

	logger, closeFn, err := FileLogger("game")
	require.NoError(t, err)
	logger.Info("started")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}
