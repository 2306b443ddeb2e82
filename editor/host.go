package editor

// FocusRequester moves input focus to or away from the field.
type FocusRequester interface {
	RequestFocus()
	RemoveFocus()
}

// ActivationNotifier is told when the field is activated (Enter).
type ActivationNotifier interface {
	Activate()
}

// Point is a position in host coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned hit area in host coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether p lies inside r. A zero-sized rect contains nothing.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Layout is the host's final geometry for the current frame.
type Layout struct {
	// OriginX is the x of the first character when the offset is zero
	// (widget position plus left padding).
	OriginX float64
	// Width is the viewport width the caret must stay inside.
	Width float64
	// HitArea bounds the widget for drop targeting.
	HitArea Rect
}
