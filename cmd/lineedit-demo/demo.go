package main

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/lineedit/editor"
	"github.com/iw2rmb/lineedit/internal/config"
)

const prompt = "> "

var (
	quitKey  = key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit"))
	focusKey = key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter", "edit"))

	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	historyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

// demo stacks a history pane, the prompt field and a help line.
type demo struct {
	field   editor.Model
	history viewport.Model
	help    help.Model

	lines []string
	width int // configured field width; 0 follows the terminal
	log   *slog.Logger
}

func newDemo(cfg config.Config, log *slog.Logger) demo {
	return demo{
		field:   editor.New(cfg.Editor(log)),
		history: viewport.New(0, 0),
		help:    help.New(),
		width:   cfg.Field.Width,
		log:     log,
	}
}

func (d demo) Init() tea.Cmd {
	// Field state lives behind the engine pointer, so the returned copy can be
	// dropped.
	_, cmd := d.field.Focus()
	return cmd
}

func (d demo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.resize(msg.Width, msg.Height)
		return d, nil

	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return d, tea.Quit
		}
		if !d.field.Focused() && key.Matches(msg, focusKey) {
			var cmd tea.Cmd
			d.field, cmd = d.field.Focus()
			return d, cmd
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			d.history, cmd = d.history.Update(msg)
			return d, cmd
		}

	case editor.ActivateMsg:
		return d.submit(msg.Text)
	}

	var cmd tea.Cmd
	d.field, cmd = d.field.Update(msg)
	return d, cmd
}

func (d demo) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		d.history.View(),
		promptStyle.Render(prompt)+d.field.View(),
		d.help.View(helpKeys{field: d.field.Engine().KeyMap()}),
	)
}

// resize lays out the history above the field row and the help row.
func (d *demo) resize(width, height int) {
	d.history.Width = width
	d.history.Height = max(height-2, 0)
	d.help.Width = width

	fieldWidth := width - lipgloss.Width(prompt)
	if d.width > 0 && d.width < fieldWidth {
		fieldWidth = d.width
	}
	d.field = d.field.SetPosition(lipgloss.Width(prompt), d.history.Height).SetWidth(fieldWidth)
}

func (d demo) submit(text string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(text) != "" {
		d.lines = append(d.lines, historyStyle.Render(text))
		d.history.SetContent(strings.Join(d.lines, "\n"))
		d.history.GotoBottom()
	}
	d.log.Info("submitted", "text", text, "history", len(d.lines))

	var cmd tea.Cmd
	d.field, cmd = d.field.SetValue("")
	return d, cmd
}

// helpKeys adds the demo's own bindings to the field's help.
type helpKeys struct {
	field editor.KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append(h.field.ShortHelp(), quitKey)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.field.FullHelp(), []key.Binding{focusKey, quitKey})
}
