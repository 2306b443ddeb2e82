package editor

import "math"

// Direction is the most recent navigation or edit direction. The scroller
// uses it to decide which viewport edge the caret must stay inside.
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Scroller keeps the caret inside a viewport by adjusting a horizontal offset.
//
// Offset is always <= 0: the text is shifted left by -Offset. The same offset
// applies to the caret and the rendered text so both scroll together.
type Scroller struct {
	Offset float64
}

// Follow applies the minimal scroll that keeps a caret at caretX (measured from
// the start of the text) visible in a viewport of the given width.
func (s *Scroller) Follow(dir Direction, caretX, viewportWidth float64) {
	switch dir {
	case DirRight:
		delta := viewportWidth - s.Offset
		if caretX > delta {
			s.Offset += delta - caretX
		}
	case DirLeft:
		if overflow := caretX + s.Offset; overflow < 0 {
			s.Offset -= overflow
		}
	default:
		return
	}
	s.clamp()
}

// Shift moves the text right by the width of a removed span.
func (s *Scroller) Shift(removedWidth float64) {
	s.Offset += removedWidth
	s.clamp()
}

func (s *Scroller) Reset() { s.Offset = 0 }

func (s *Scroller) clamp() {
	s.Offset = math.Min(s.Offset, 0)
}
