package editor

import (
	"log/slog"

	"github.com/iw2rmb/lineedit/buffer"
)

// Engine is the interaction state machine of a single-line text field.
//
// Input handlers only enqueue actions. The host then calls, once per frame and
// in this order:
//
//  1. LogicalUpdate, which applies at most one queued action;
//  2. SetLayout, once the frame's layout is final;
//  3. PostLayoutUpdate, which recomputes CaretVisual if the selection changed.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg Config
	buf *buffer.Buffer
	log *slog.Logger

	queue actionQueue

	sel    buffer.Selection
	dir    Direction
	scroll Scroller
	caret  CaretVisual
	state  VisualState
	layout Layout

	focused bool
	pressed bool

	// selfUpdate is set when the engine writes the buffer, so the host's
	// follow-up refresh can be skipped.
	selfUpdate       bool
	selectionChanged bool
}

func NewEngine(cfg Config) *Engine {
	cfg = normalizeConfig(cfg)
	buf := cfg.Buffer
	if buf == nil {
		buf = buffer.New(cfg.Text)
	}

	e := &Engine{
		cfg: cfg,
		buf: buf,
		log: cfg.Logger,
	}
	if buf.Len() == 0 {
		e.setState(StateEmpty)
	}
	return e
}

// Enqueue appends an action to the input queue.
func (e *Engine) Enqueue(a Action) { e.queue.push(a) }

// Pending returns the number of queued actions.
func (e *Engine) Pending() int { return e.queue.len() }

// LogicalUpdate applies the oldest queued action. It reports false when the
// queue was empty.
func (e *Engine) LogicalUpdate() bool {
	a, ok := e.queue.pop()
	if !ok {
		return false
	}
	e.log.Debug("apply action", "action", a.actionName(), "pending", e.queue.len())
	e.apply(a)
	return true
}

// PostLayoutUpdate recomputes the caret visual when the selection changed
// since the last call. It must run after LogicalUpdate, once the layout passed
// to SetLayout is final.
func (e *Engine) PostLayoutUpdate() {
	if !e.selectionChanged {
		return
	}
	e.updateCaret()
	e.selectionChanged = false
}

// SetLayout records the frame geometry used by hit-testing and scrolling.
func (e *Engine) SetLayout(l Layout) {
	if l.Width < 0 {
		l.Width = 0
	}
	e.layout = l
}

func (e *Engine) Layout() Layout { return e.layout }

// SetFocused updates the focus flag and queues a FocusChanged action.
func (e *Engine) SetFocused(focused bool) {
	if e.focused == focused {
		return
	}
	e.focused = focused
	e.Enqueue(FocusChanged{})
}

func (e *Engine) Focused() bool { return e.focused }

func (e *Engine) Selection() buffer.Selection { return e.sel }

// SetSelection replaces the selection from outside the engine and queues a
// SelectionChanged action. Out-of-range values are clamped on the next focus
// change or refresh.
func (e *Engine) SetSelection(sel buffer.Selection) {
	e.sel = sel
	e.Enqueue(SelectionChanged{})
}

// ReplaceText replaces the buffer content from outside the engine. The
// selection resets to (0,0) and a ForceRefresh is queued.
func (e *Engine) ReplaceText(s string) {
	e.buf.SetText(s)
	e.sel = buffer.Selection{}
	e.selectionChanged = true
	e.selfUpdate = false
	e.Enqueue(ForceRefresh{})
}

// Refresh queues a ForceRefresh, typically after the host observed a text
// change.
func (e *Engine) Refresh() { e.Enqueue(ForceRefresh{}) }

func (e *Engine) Text() string { return e.buf.Text() }

func (e *Engine) Buffer() *buffer.Buffer { return e.buf }

func (e *Engine) State() VisualState { return e.state }

// Caret returns the caret visual computed by the last PostLayoutUpdate.
func (e *Engine) Caret() CaretVisual {
	c := e.caret
	c.Offset = e.scroll.Offset
	return c
}

// Direction returns the direction pending for the next PostLayoutUpdate.
func (e *Engine) Direction() Direction { return e.dir }

func (e *Engine) Pressed() bool { return e.pressed }

func (e *Engine) KeyMap() KeyMap { return e.cfg.KeyMap }

func (e *Engine) apply(a Action) {
	switch a := a.(type) {
	case KeyInput:
		e.keyDown(a.Event)
	case PointerDown:
		e.pointerDown(a.Pos)
	case PointerUp:
		e.pointerUp()
	case PointerMove:
		e.pointerMove(a.Pos)
	case Drop:
		e.drop(a.Text, a.Pos)
	case FocusChanged:
		e.focusChanged()
	case SelectionChanged:
		e.selectionChanged = true
	case ForceRefresh:
		e.forceUpdate()
	}
}

// updateCaret derives the caret geometry from the selection. The caret tracks
// the Start edge.
func (e *Engine) updateCaret() {
	lo, hi := e.sel.Normalized()

	cursorX := e.measure(0, e.sel.Start).Width
	e.caret.CursorX = cursorX
	e.caret.SelectionX = e.measure(0, lo).Width
	e.caret.SelectionWidth = e.measure(lo, hi).Width

	if e.dir == DirNone {
		return
	}
	e.scroll.Follow(e.dir, cursorX, e.layout.Width)
	e.dir = DirNone
}

// measure measures buffer[start:end]. Invalid ranges and measurement failures
// yield zero metrics.
func (e *Engine) measure(start, end int) Metrics {
	part, ok := e.buf.Slice(start, end)
	if !ok || part == "" {
		return Metrics{}
	}
	m, err := e.measureText(part, e.cfg.Font)
	if err != nil {
		return Metrics{}
	}
	return m
}

// measureText calls the configured measurer and logs failures.
func (e *Engine) measureText(text string, font Font) (Metrics, error) {
	m, err := e.cfg.Measurer.Measure(text, font)
	if err != nil {
		e.log.Debug("measure failed", "len", len(text), "err", err)
	}
	return m, err
}

func (e *Engine) setSelection(sel buffer.Selection) {
	e.sel = sel
	e.selectionChanged = true
}

func (e *Engine) setState(s VisualState) {
	if e.state == s {
		return
	}
	e.state = s
	if e.cfg.OnStateChange != nil {
		e.cfg.OnStateChange(s)
	}
}

// textWritten marks a buffer write made by the engine itself.
func (e *Engine) textWritten() {
	e.selfUpdate = true
	e.selectionChanged = true
	if e.cfg.OnChange != nil {
		e.cfg.OnChange(ChangeEvent{
			Version:   e.buf.Version(),
			Selection: e.sel,
			Text:      e.buf.Text(),
		})
	}
}

func (e *Engine) updateFocusedState() {
	if e.buf.Len() == 0 {
		e.setState(StateEmptyFocused)
		return
	}
	e.setState(StateFocused)
}
