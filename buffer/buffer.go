package buffer

import "slices"

// Buffer is the editable text of a single-line field, stored as UTF-16 code
// units.
//
// Every text change bumps Version. Methods never panic on out-of-range
// indices: inserts clamp, removals report false.
type Buffer struct {
	units   []uint16
	version uint64
}

func New(text string) *Buffer {
	return &Buffer{units: encodeUnits(text)}
}

func (b *Buffer) Text() string { return decodeUnits(b.units) }

// Len returns the buffer length in code units.
func (b *Buffer) Len() int { return len(b.units) }

func (b *Buffer) Version() uint64 { return b.version }

// SetText replaces the whole buffer content.
func (b *Buffer) SetText(s string) {
	next := encodeUnits(s)
	if slices.Equal(b.units, next) {
		return
	}
	b.units = next
	b.version++
}

// Slice returns the text in [start, end).
//
// ok is false when the range is reversed or out of bounds.
func (b *Buffer) Slice(start, end int) (string, bool) {
	if start < 0 || end < start || end > len(b.units) {
		return "", false
	}
	return decodeUnits(b.units[start:end]), true
}

// Insert inserts s at code unit index at and returns the number of code units
// inserted. at is clamped into [0, Len].
func (b *Buffer) Insert(at int, s string) int {
	ins := encodeUnits(s)
	if len(ins) == 0 {
		return 0
	}
	at = min(max(at, 0), len(b.units))

	next := make([]uint16, 0, len(b.units)+len(ins))
	next = append(next, b.units[:at]...)
	next = append(next, ins...)
	next = append(next, b.units[at:]...)
	b.units = next
	b.version++
	return len(ins)
}

// Remove deletes the code unit at index at.
func (b *Buffer) Remove(at int) bool {
	return b.RemoveRange(at, at+1)
}

// RemoveRange deletes the code units in [start, end).
//
// It reports false and leaves the buffer untouched when the range is empty or
// out of bounds.
func (b *Buffer) RemoveRange(start, end int) bool {
	if start < 0 || end <= start || end > len(b.units) {
		return false
	}
	b.units = append(b.units[:start:start], b.units[end:]...)
	b.version++
	return true
}
