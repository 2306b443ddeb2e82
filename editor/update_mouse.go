package editor

import "github.com/iw2rmb/lineedit/buffer"

// pointerDown places the caret under the pointer. An unfocused field only
// requests focus; the caret is placed by a later press.
func (e *Engine) pointerDown(pos Point) {
	e.pressed = true
	if !e.focused {
		if e.cfg.Focus != nil {
			e.cfg.Focus.RequestFocus()
		}
		return
	}

	e.setSelection(buffer.Collapsed(e.hitTest(pos)))
}

// pointerMove drags the Start edge of the selection while the button is held.
// End stays anchored where the drag began. A move is dropped when a newer one
// is already queued.
func (e *Engine) pointerMove(pos Point) {
	if !e.pressed || !e.focused || e.queue.moveQueued() {
		return
	}

	sel := e.sel
	next := e.hitTest(pos)
	if next == sel.Start {
		return
	}
	if next > sel.Start {
		e.dir = DirRight
	} else {
		e.dir = DirLeft
	}
	sel.SetStart(next)
	e.setSelection(sel)

	// Re-test the same position after the scroll applied by the next
	// PostLayoutUpdate, so dragging past an edge keeps scrolling until the
	// index settles.
	e.Enqueue(PointerMove{Pos: pos})
}

func (e *Engine) pointerUp() {
	e.pressed = false
}

func (e *Engine) drop(text string, pos Point) {
	if !e.layout.HitArea.Contains(pos) {
		return
	}
	switch e.cfg.DropPolicy {
	case DropIgnore:
		e.log.Debug("drop ignored", "len", len(text))
	default:
		e.InsertText(text)
	}
}

func (e *Engine) focusChanged() {
	e.adjustSelection()

	if e.cfg.SelectAllOnFocus {
		e.SelectAll()
	}

	if e.focused {
		e.caret.Visible = true
		e.updateFocusedState()
		return
	}

	e.caret.Visible = false
	if e.buf.Len() == 0 {
		e.setState(StateEmpty)
	} else {
		e.setState(StateDefault)
	}
}

// adjustSelection collapses a selection that points past the end of a buffer
// shortened from outside.
func (e *Engine) adjustSelection() {
	n := e.buf.Len()
	if e.sel.InBounds(n) {
		return
	}
	e.setSelection(buffer.Clamp(e.sel, n))
	if e.focused {
		e.updateFocusedState()
	}
}

// forceUpdate re-derives visual state after an external text change. A
// refresh that follows the engine's own write is skipped.
func (e *Engine) forceUpdate() {
	if e.selfUpdate {
		e.selfUpdate = false
		return
	}

	e.adjustSelection()

	if e.buf.Len() == 0 {
		e.scroll.Reset()
		e.setState(StateEmpty)
		return
	}
	e.setState(StateDefault)
}

func (e *Engine) hitTest(pos Point) int {
	return Locate(pos.X, e.buf.Text(), MeasureFunc(e.measureText), e.cfg.Font, e.layout.OriginX, e.scroll.Offset)
}
