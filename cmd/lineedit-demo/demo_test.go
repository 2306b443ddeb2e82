package main

import (
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/lineedit/internal/config"
)

// pump feeds msg to d and every message its commands produce back into d.
func pump(t *testing.T, d demo, msg tea.Msg) demo {
	t.Helper()

	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 1000, "demo did not settle")

		next, cmd := d.Update(queue[0])
		d = next.(demo)
		queue = append(queue[1:], expand(cmd)...)
	}
	return d
}

func expand(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, expand(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func newTestDemo(t *testing.T) demo {
	t.Helper()

	cfg := config.Default()
	cfg.Field.SystemClipboard = false
	d := newDemo(cfg, slog.New(slog.DiscardHandler))
	for _, msg := range expand(d.Init()) {
		d = pump(t, d, msg)
	}
	d = pump(t, d, tea.WindowSizeMsg{Width: 40, Height: 6})
	require.True(t, d.field.Focused())
	return d
}

func TestDemo_SubmitMovesLineToHistory(t *testing.T) {
	d := newTestDemo(t)

	d = pump(t, d, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})
	d = pump(t, d, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, d.lines, 1)
	require.Contains(t, d.lines[0], "hello")
	require.Empty(t, d.field.Value())
	require.False(t, d.field.Focused())
	require.Contains(t, d.history.View(), "hello")

	d = pump(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, d.field.Focused(), "enter refocuses the field")
}

func TestDemo_BlankSubmitSkipsHistory(t *testing.T) {
	d := newTestDemo(t)

	d = pump(t, d, tea.KeyMsg{Type: tea.KeySpace})
	d = pump(t, d, tea.KeyMsg{Type: tea.KeyEnter})

	require.Empty(t, d.lines)
}

func TestDemo_Layout(t *testing.T) {
	d := newTestDemo(t)

	require.Equal(t, 4, d.history.Height)
	require.Equal(t, 38, d.field.Width())

	lines := strings.Split(d.View(), "\n")
	require.Len(t, lines, 6)
	require.Contains(t, lines[4], prompt)
}

func TestDemo_ConfiguredWidthCapsField(t *testing.T) {
	cfg := config.Default()
	cfg.Field.SystemClipboard = false
	cfg.Field.Width = 10
	d := newDemo(cfg, slog.New(slog.DiscardHandler))

	d = pump(t, d, tea.WindowSizeMsg{Width: 40, Height: 6})

	require.Equal(t, 10, d.field.Width())
}

func TestDemo_Quit(t *testing.T) {
	d := newTestDemo(t)

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})

	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApplyFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Set("log-level", "debug"))
	require.NoError(t, cmd.Flags().Set("width", "12"))
	require.NoError(t, cmd.Flags().Set("system-clipboard", "false"))

	opts := options{logLevel: "debug", width: 12, systemClipboard: false}
	cfg := config.Default()
	applyFlags(cmd, opts, &cfg)

	require.Equal(t, "debug", cfg.Logger.Level)
	require.Equal(t, 12, cfg.Field.Width)
	require.False(t, cfg.Field.SystemClipboard)
	require.Empty(t, cfg.Logger.File, "unset flags keep file values")
}
