package editor

import (
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Key identifies the physical key of a KeyEvent.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEscape
	// KeyChar is any key that produces text; KeyEvent.Code names it.
	KeyChar
)

var keyNames = [...]string{
	KeyUnknown:   "",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyChar:      "",
}

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// DefaultCommandModifier returns the platform's shortcut modifier: Meta on
// Apple hosts, Ctrl everywhere else.
func DefaultCommandModifier() Modifiers {
	if runtime.GOOS == "darwin" || runtime.GOOS == "ios" {
		return ModMeta
	}
	return ModCtrl
}

// KeyEvent is a host-neutral key press.
type KeyEvent struct {
	Key Key
	// Code names a KeyChar key in lower case ("x", "1"). Ignored otherwise.
	Code string
	// Text is what the key would insert; empty for non-printing keys.
	Text string
	Mods Modifiers
}

// TextInput returns a KeyEvent that inserts s.
func TextInput(s string) KeyEvent {
	return KeyEvent{Key: KeyChar, Code: strings.ToLower(s), Text: s}
}

// keyChord is the canonical binding string of a KeyEvent. The command modifier
// renders as "cmd" so one KeyMap serves every platform.
type keyChord string

func (c keyChord) String() string { return string(c) }

func (ev KeyEvent) chord(cmd Modifiers) keyChord {
	base := ev.Code
	if ev.Key != KeyChar && int(ev.Key) < len(keyNames) {
		base = keyNames[ev.Key]
	}
	if base == "" {
		return ""
	}

	mods := ev.Mods
	parts := make([]string, 0, 5)
	if cmd != 0 && mods&cmd == cmd {
		parts = append(parts, "cmd")
		mods &^= cmd
	}
	if mods&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if mods&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if mods&ModMeta != 0 {
		parts = append(parts, "meta")
	}
	if mods&ModShift != 0 {
		parts = append(parts, "shift")
	}
	parts = append(parts, base)
	return keyChord(strings.Join(parts, "+"))
}

// KeyMap defines the field's key bindings.
//
// Bindings are matched against canonical chords such as "shift+left" or
// "cmd+x", where cmd is Config.CommandModifier.
type KeyMap struct {
	Left, Right             key.Binding
	SelectLeft, SelectRight key.Binding

	Backspace, Delete key.Binding
	Activate          key.Binding
	Collapse          key.Binding

	Cut, Copy, Paste, SelectAll key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Arrows step one unit whatever other modifiers are held; only shift
		// changes their meaning.
		Left: key.NewBinding(
			key.WithKeys("left", "cmd+left", "ctrl+left", "alt+left", "meta+left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "cmd+right", "ctrl+right", "alt+right", "meta+right"),
			key.WithHelp("→", "right"),
		),

		SelectLeft: key.NewBinding(
			key.WithKeys("shift+left", "cmd+shift+left", "ctrl+shift+left", "alt+shift+left", "meta+shift+left"),
			key.WithHelp("shift+←", "select left"),
		),
		SelectRight: key.NewBinding(
			key.WithKeys("shift+right", "cmd+shift+right", "ctrl+shift+right", "alt+shift+right", "meta+shift+right"),
			key.WithHelp("shift+→", "select right"),
		),

		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Activate:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Collapse:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "collapse selection")),

		Cut:       key.NewBinding(key.WithKeys("cmd+x"), key.WithHelp("cmd+x", "cut")),
		Copy:      key.NewBinding(key.WithKeys("cmd+c"), key.WithHelp("cmd+c", "copy")),
		Paste:     key.NewBinding(key.WithKeys("cmd+v"), key.WithHelp("cmd+v", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("cmd+a"), key.WithHelp("cmd+a", "select all")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Activate, km.SelectLeft, km.SelectRight, km.Copy, km.Paste}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.SelectLeft, km.SelectRight},
		{km.Backspace, km.Delete, km.Activate, km.Collapse},
		{km.Cut, km.Copy, km.Paste, km.SelectAll},
	}
}

func keyMapIsZero(km KeyMap) bool {
	for _, b := range [...]key.Binding{
		km.Left, km.Right, km.SelectLeft, km.SelectRight,
		km.Backspace, km.Delete, km.Activate, km.Collapse,
		km.Cut, km.Copy, km.Paste, km.SelectAll,
	} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
