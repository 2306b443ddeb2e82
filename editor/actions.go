package editor

// Action is a typed input event queued for the engine.
//
// Actions are applied in enqueue order, one per LogicalUpdate.
type Action interface {
	actionName() string
}

// KeyInput is a key press routed to the field.
type KeyInput struct {
	Event KeyEvent
}

// PointerDown is a primary button press at Pos.
type PointerDown struct {
	Pos Point
}

// PointerUp is a primary button release.
type PointerUp struct{}

// PointerMove is a pointer motion to Pos.
type PointerMove struct {
	Pos Point
}

// Drop is text (or a file name) dropped at Pos.
type Drop struct {
	Text string
	Pos  Point
}

// FocusChanged reports that the host changed the field's focus.
type FocusChanged struct{}

// SelectionChanged reports that the selection was set from outside the engine.
type SelectionChanged struct{}

// ForceRefresh asks the engine to re-derive its visual state from the buffer.
type ForceRefresh struct{}

func (KeyInput) actionName() string         { return "key" }
func (PointerDown) actionName() string      { return "pointer_down" }
func (PointerUp) actionName() string        { return "pointer_up" }
func (PointerMove) actionName() string      { return "pointer_move" }
func (Drop) actionName() string             { return "drop" }
func (FocusChanged) actionName() string     { return "focus_changed" }
func (SelectionChanged) actionName() string { return "selection_changed" }
func (ForceRefresh) actionName() string     { return "force_refresh" }

// actionQueue is a FIFO of pending actions.
type actionQueue struct {
	items []Action
	head  int
}

func (q *actionQueue) push(a Action) {
	if a == nil {
		return
	}
	q.items = append(q.items, a)
}

func (q *actionQueue) pop() (Action, bool) {
	if q.head >= len(q.items) {
		return nil, false
	}
	a := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return a, true
}

func (q *actionQueue) len() int { return len(q.items) - q.head }

// moveQueued reports whether a PointerMove is waiting before the next press or
// release.
func (q *actionQueue) moveQueued() bool {
	for _, a := range q.items[q.head:] {
		switch a.(type) {
		case PointerMove:
			return true
		case PointerDown, PointerUp:
			return false
		}
	}
	return false
}
