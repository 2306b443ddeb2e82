package buffer

// MoveLeft collapses sel one step to the left.
//
// A non-empty selection collapses onto its left edge without moving further.
// A collapsed caret steps one code unit left, stopping at 0.
func MoveLeft(sel Selection) Selection {
	switch {
	case sel.Start < sel.End:
		sel.SetEnd(sel.Start)
	case sel.Start > sel.End:
		sel.SetStart(sel.End)
	default:
		if sel.Start > 0 {
			sel.Set(sel.Start - 1)
		}
	}
	return sel
}

// MoveRight collapses sel one step to the right within a buffer of n code
// units.
//
// A non-empty selection collapses onto its right edge without moving further.
// A collapsed caret steps one code unit right, stopping at n.
func MoveRight(sel Selection, n int) Selection {
	switch {
	case sel.Start < sel.End:
		sel.SetStart(sel.End)
	case sel.Start > sel.End:
		sel.SetEnd(sel.Start)
	default:
		if sel.Start < n {
			sel.Set(sel.Start + 1)
		}
	}
	return sel
}

// ExpandLeft moves only the Start edge one code unit left, stopping at 0.
func ExpandLeft(sel Selection) Selection {
	if sel.Start > 0 {
		sel.SetStart(sel.Start - 1)
	}
	return sel
}

// ExpandRight moves only the Start edge one code unit right, stopping at n.
func ExpandRight(sel Selection, n int) Selection {
	if sel.Start < n {
		sel.SetStart(sel.Start + 1)
	}
	return sel
}

// Clamp collapses sel to n when either end lies outside [0, n].
//
// It returns sel unchanged when both ends are in bounds.
func Clamp(sel Selection, n int) Selection {
	if sel.InBounds(n) {
		return sel
	}
	if n < 0 {
		n = 0
	}
	return Collapsed(n)
}
