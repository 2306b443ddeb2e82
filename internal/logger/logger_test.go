package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for name, want := range cases {
		require.Equal(t, want, ParseLevel(name), "level %q", name)
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn"}, &buf)

	log.Info("hidden")
	log.Warn("clipboard write failed", "err", "boom")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "clipboard write failed")
	require.Contains(t, out, "err=boom")
}

func TestNew_NilWriterDiscards(t *testing.T) {
	log := New(Config{Level: "debug"}, nil)
	require.False(t, log.Enabled(t.Context(), slog.LevelError))
}

func TestOpen_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineedit.log")

	log, closeFn, err := Open(Config{Level: "debug", File: path})
	require.NoError(t, err)
	log.Debug("apply action", "action", "key")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "apply action")
}

func TestOpen_EmptyFileDisablesLogging(t *testing.T) {
	log, closeFn, err := Open(DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, closeFn())
	require.False(t, log.Enabled(t.Context(), slog.LevelError))
}
