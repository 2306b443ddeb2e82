package editor

import (
	"log/slog"

	"github.com/iw2rmb/lineedit/buffer"
)

// DropPolicy controls what happens to text dropped onto the field.
type DropPolicy uint8

const (
	// DropInsert inserts dropped text at the selection when the drop lands
	// inside the field's hit area.
	DropInsert DropPolicy = iota
	// DropIgnore logs and discards drops.
	DropIgnore
)

// Config configures an Engine.
type Config struct {
	// Initial text, used when Buffer is nil.
	Text string
	// Buffer is the host-owned text buffer the engine edits. The engine never
	// replaces it, but tolerates it being mutated between ticks.
	Buffer *buffer.Buffer

	Font Font
	// Measurer defaults to CellMeasurer{TabWidth: TabWidth}.
	Measurer TextMeasurer
	TabWidth int

	KeyMap KeyMap
	// CommandModifier is the modifier that turns x/c/v/a into cut, copy,
	// paste and select-all. Defaults to DefaultCommandModifier().
	CommandModifier Modifiers

	// LoseFocusOnActivation removes focus before firing activation on Enter.
	LoseFocusOnActivation bool
	// SelectAllOnFocus selects the whole text whenever focus changes.
	SelectAllOnFocus bool
	DropPolicy       DropPolicy

	Clipboard  Clipboard
	Focus      FocusRequester
	Activation ActivationNotifier

	// OnChange is called after every text edit made by the engine.
	OnChange func(ChangeEvent)
	// OnStateChange is called when the visual state changes.
	OnStateChange func(VisualState)

	// Rendering options used by Model.
	Style       Style
	Placeholder string

	Logger *slog.Logger
}

// DefaultConfig returns a Config with the field defaults: focus is dropped on
// activation and drops are inserted.
func DefaultConfig() Config {
	return Config{
		KeyMap:                DefaultKeyMap(),
		CommandModifier:       DefaultCommandModifier(),
		LoseFocusOnActivation: true,
		Style:                 DefaultStyle(),
	}
}

func normalizeConfig(cfg Config) Config {
	if keyMapIsZero(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.CommandModifier == 0 {
		cfg.CommandModifier = DefaultCommandModifier()
	}
	if cfg.Measurer == nil {
		cfg.Measurer = CellMeasurer{TabWidth: cfg.TabWidth}
	}
	switch cfg.DropPolicy {
	case DropInsert, DropIgnore:
	default:
		cfg.DropPolicy = DropInsert
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}
