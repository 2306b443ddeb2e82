package editor

import "github.com/iw2rmb/lineedit/buffer"

// InsertText replaces the selection (if any) with s and places the caret after
// the inserted text.
func (e *Engine) InsertText(s string) {
	if s == "" {
		return
	}

	updateFocus := e.buf.Len() == 0 || e.ClearSelection()

	sel := e.sel
	at := min(max(sel.Start, 0), e.buf.Len())
	n := e.buf.Insert(at, s)
	sel.Set(at + n)
	e.setSelection(sel)
	e.textWritten()

	e.dir = DirRight

	if updateFocus {
		e.updateFocusedState()
	}
}

// Backspace deletes the selection, or the code unit before the caret.
func (e *Engine) Backspace() {
	if e.ClearSelection() {
		return
	}

	sel := e.sel
	if sel.Start <= 0 || sel.Start > e.buf.Len() {
		return
	}
	sel.Set(sel.Start - 1)

	e.scroll.Shift(e.measure(sel.Start, sel.Start+1).Width)
	e.buf.Remove(sel.Start)
	e.setSelection(sel)
	e.textWritten()

	if e.buf.Len() == 0 {
		e.updateFocusedState()
	}
}

// DeleteForward deletes the selection, or the code unit at the caret.
func (e *Engine) DeleteForward() {
	if e.ClearSelection() {
		return
	}

	n := e.buf.Len()
	if n == 0 || e.sel.End > n || e.sel.Start >= n || e.sel.Start < 0 {
		return
	}
	e.buf.Remove(e.sel.Start)
	e.textWritten()

	if e.buf.Len() == 0 {
		e.updateFocusedState()
	}
}

// ClearSelection removes the selected text and collapses the selection to its
// left edge. It reports false, changing nothing, when the selection is empty.
func (e *Engine) ClearSelection() bool {
	if e.sel.IsEmpty() {
		return false
	}

	n := e.buf.Len()
	lo, hi := e.sel.Normalized()
	lo = min(max(lo, 0), n)
	hi = min(max(hi, lo), n)

	width := e.measure(lo, hi).Width
	removed := e.buf.RemoveRange(lo, hi)
	e.setSelection(buffer.Collapsed(lo))
	if removed {
		e.scroll.Shift(width)
		e.textWritten()
	}

	if e.buf.Len() == 0 {
		e.updateFocusedState()
	}
	return true
}

// Copy writes the selected text to the clipboard.
func (e *Engine) Copy() {
	if e.sel.IsEmpty() || e.cfg.Clipboard == nil {
		return
	}
	lo, hi := e.sel.Normalized()
	text, ok := e.buf.Slice(lo, hi)
	if !ok {
		return
	}
	if err := e.cfg.Clipboard.WriteText(text); err != nil {
		e.log.Warn("clipboard write failed", "err", err)
	}
}

// Cut copies the selected text and removes it.
func (e *Engine) Cut() {
	e.Copy()
	e.ClearSelection()
}

// Paste inserts the clipboard text at the selection.
func (e *Engine) Paste() {
	if e.cfg.Clipboard == nil {
		return
	}
	text, err := e.cfg.Clipboard.ReadText()
	if err != nil {
		e.log.Warn("clipboard read failed", "err", err)
		return
	}
	e.InsertText(text)
}

// SelectAll selects the whole text. It does nothing when the text is empty or
// the field is not focused.
func (e *Engine) SelectAll() {
	n := e.buf.Len()
	if n == 0 || !e.focused {
		return
	}
	e.setSelection(buffer.Selection{Start: 0, End: n})
}

func (e *Engine) ExpandSelectionLeft() {
	e.dir = DirLeft
	e.setSelection(buffer.ExpandLeft(e.sel))
}

func (e *Engine) ExpandSelectionRight() {
	e.dir = DirRight
	e.setSelection(buffer.ExpandRight(e.sel, e.buf.Len()))
}

func (e *Engine) MoveSelectionLeft() {
	e.dir = DirLeft
	e.setSelection(buffer.MoveLeft(e.sel))
}

func (e *Engine) MoveSelectionRight() {
	e.dir = DirRight
	e.setSelection(buffer.MoveRight(e.sel, e.buf.Len()))
}

// CollapseSelection collapses the selection onto the caret without deleting.
func (e *Engine) CollapseSelection() {
	sel := e.sel
	sel.SetEnd(sel.Start)
	e.setSelection(sel)
}
