package buffer

import "unicode/utf16"

// UnitLen returns the length of s in UTF-16 code units.
func UnitLen(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func encodeUnits(s string) []uint16 {
	if s == "" {
		return nil
	}
	return utf16.Encode([]rune(s))
}

// decodeUnits converts code units back to a Go string. Unpaired surrogates
// decode to U+FFFD.
func decodeUnits(u []uint16) string {
	if len(u) == 0 {
		return ""
	}
	return string(utf16.Decode(u))
}

// UnitOffsetToByte maps a code unit offset in s to a byte offset.
//
// Offsets that fall inside a surrogate pair round down to the rune start.
// Offsets past the end map to len(s).
func UnitOffsetToByte(s string, off int) int {
	if off <= 0 {
		return 0
	}
	units := 0
	for i, r := range s {
		n := utf16.RuneLen(r)
		if units+n > off {
			return i
		}
		units += n
	}
	return len(s)
}
