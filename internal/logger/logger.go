// Package logger builds the slog logger handed to lineedit components.
//
// A Bubble Tea program owns the terminal, so records go to a file opened with
// tea.LogToFile or are discarded.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Config is the [logger] table of the configuration file.
type Config struct {
	// Level is the minimum level: "debug", "info", "warn" or "error".
	Level string `toml:"level"`
	// File is the log file path. Empty disables logging.
	File string `toml:"file"`
}

func DefaultConfig() Config {
	return Config{Level: "info"}
}

// ParseLevel maps a level name to a slog level. Unknown names yield info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w at cfg.Level. A nil writer yields a
// logger that discards everything.
func New(cfg Config, w io.Writer) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	opts := slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, &opts))
}

// Open returns a logger for cfg and a function that closes its file.
func Open(cfg Config) (*slog.Logger, func() error, error) {
	if cfg.File == "" {
		return New(cfg, nil), func() error { return nil }, nil
	}
	f, err := tea.LogToFile(cfg.File, "")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", cfg.File, err)
	}
	return New(cfg, f), f.Close, nil
}
