package buffer

// Selection is an unordered pair of code unit indices.
//
// Start is the moving edge that the caret follows; End is the anchor of a drag
// or shift selection. Start == End denotes a collapsed caret. Selection does no
// bounds checking: callers clamp against the buffer length.
type Selection struct {
	Start int
	End   int
}

// Collapsed returns a selection with both ends at pos.
func Collapsed(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

// Normalized returns (min, max) of the two ends.
func (s Selection) Normalized() (int, int) {
	if s.Start > s.End {
		return s.End, s.Start
	}
	return s.Start, s.End
}

func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the number of code units covered by the selection.
func (s Selection) Len() int {
	lo, hi := s.Normalized()
	return hi - lo
}

// Set collapses both ends to pos.
func (s *Selection) Set(pos int) {
	s.Start = pos
	s.End = pos
}

func (s *Selection) SetStart(pos int) { s.Start = pos }

func (s *Selection) SetEnd(pos int) { s.End = pos }

// InBounds reports whether both ends lie within [0, n].
func (s Selection) InBounds(n int) bool {
	return s.Start >= 0 && s.Start <= n && s.End >= 0 && s.End <= n
}
