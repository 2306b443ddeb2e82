package buffer

import "testing"

func TestSelection_NormalizedAndEmpty(t *testing.T) {
	cases := []struct {
		sel       Selection
		lo, hi    int
		wantEmpty bool
	}{
		{sel: Selection{}, lo: 0, hi: 0, wantEmpty: true},
		{sel: Selection{Start: 2, End: 5}, lo: 2, hi: 5},
		{sel: Selection{Start: 5, End: 2}, lo: 2, hi: 5},
		{sel: Collapsed(3), lo: 3, hi: 3, wantEmpty: true},
	}

	for _, tc := range cases {
		lo, hi := tc.sel.Normalized()
		if lo != tc.lo || hi != tc.hi {
			t.Fatalf("Normalized(%v): got (%d,%d), want (%d,%d)", tc.sel, lo, hi, tc.lo, tc.hi)
		}
		if got := tc.sel.IsEmpty(); got != tc.wantEmpty {
			t.Fatalf("IsEmpty(%v): got %v, want %v", tc.sel, got, tc.wantEmpty)
		}
		if got := tc.sel.Len(); got != tc.hi-tc.lo {
			t.Fatalf("Len(%v): got %d, want %d", tc.sel, got, tc.hi-tc.lo)
		}
	}
}

func TestSelection_Setters(t *testing.T) {
	var s Selection
	s.SetEnd(4)
	if s != (Selection{Start: 0, End: 4}) {
		t.Fatalf("after SetEnd: got %v", s)
	}
	s.SetStart(7)
	if s != (Selection{Start: 7, End: 4}) {
		t.Fatalf("after SetStart: got %v", s)
	}
	s.Set(1)
	if s != Collapsed(1) {
		t.Fatalf("after Set: got %v", s)
	}

	// No bounds checking inside the value type.
	s.Set(-3)
	if s.Start != -3 || s.End != -3 {
		t.Fatalf("Set(-3): got %v", s)
	}
}

func TestSelection_InBounds(t *testing.T) {
	if !(Selection{Start: 0, End: 3}).InBounds(3) {
		t.Fatalf("(0,3) should be in bounds of 3")
	}
	if (Selection{Start: 4, End: 1}).InBounds(3) {
		t.Fatalf("(4,1) should be out of bounds of 3")
	}
	if (Selection{Start: -1, End: 1}).InBounds(3) {
		t.Fatalf("(-1,1) should be out of bounds")
	}
}
