package editor

import "github.com/charmbracelet/bubbles/key"

// keyDown dispatches a key press through the KeyMap. Keys arriving while the
// field is unfocused are dropped.
func (e *Engine) keyDown(ev KeyEvent) {
	if !e.focused {
		return
	}

	km := e.cfg.KeyMap
	chord := ev.chord(e.cfg.CommandModifier)

	switch {
	case key.Matches(chord, km.Left):
		e.MoveSelectionLeft()
	case key.Matches(chord, km.Right):
		e.MoveSelectionRight()
	case key.Matches(chord, km.SelectLeft):
		e.ExpandSelectionLeft()
	case key.Matches(chord, km.SelectRight):
		e.ExpandSelectionRight()

	case key.Matches(chord, km.Backspace):
		e.Backspace()
	case key.Matches(chord, km.Delete):
		e.DeleteForward()
	case key.Matches(chord, km.Activate):
		e.activate()
	case key.Matches(chord, km.Collapse):
		e.CollapseSelection()

	case key.Matches(chord, km.Cut):
		e.Cut()
	case key.Matches(chord, km.Copy):
		e.Copy()
	case key.Matches(chord, km.Paste):
		e.Paste()
	case key.Matches(chord, km.SelectAll):
		e.SelectAll()

	default:
		e.InsertText(ev.Text)
	}
}

// activate optionally drops focus, then notifies the host.
func (e *Engine) activate() {
	if e.cfg.LoseFocusOnActivation && e.cfg.Focus != nil {
		e.cfg.Focus.RemoveFocus()
	}
	if e.cfg.Activation != nil {
		e.cfg.Activation.Activate()
	}
}
