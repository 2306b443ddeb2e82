package editor

import "github.com/iw2rmb/lineedit/buffer"

// ChangeEvent describes the field after an edit made by the engine.
type ChangeEvent struct {
	Version   uint64
	Selection buffer.Selection
	Text      string
}

// VisualState is the host-facing state name used to pick the field's look.
type VisualState uint8

const (
	StateDefault VisualState = iota
	StateEmpty
	StateFocused
	StateEmptyFocused
)

func (s VisualState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFocused:
		return "focused"
	case StateEmptyFocused:
		return "empty_focused"
	default:
		return "default"
	}
}

// CaretVisual is the derived caret and selection geometry.
//
// CursorX, SelectionX and SelectionWidth are measured from the start of the
// text, before Offset is applied.
type CaretVisual struct {
	CursorX        float64
	SelectionX     float64
	SelectionWidth float64
	Offset         float64
	Visible        bool
}
