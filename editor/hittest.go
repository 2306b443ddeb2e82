package editor

import (
	"math"

	"github.com/iw2rmb/lineedit/buffer"
)

// CharPosition pairs a code unit index with the x of the caret placed there.
type CharPosition struct {
	Index int
	X     float64
}

// Positions returns the caret x for every index in [0, len(text)], where len
// counts UTF-16 code units:
//
//	X(i) = originX + offset + width(text[0:i])
//
// Each prefix is measured separately; the cost is one Measure call per code
// unit, which suits short single-line fields only.
func Positions(text string, m TextMeasurer, font Font, originX, offset float64) []CharPosition {
	b := buffer.New(text)
	n := b.Len()
	start := originX + offset

	out := make([]CharPosition, 0, n+1)
	out = append(out, CharPosition{Index: 0, X: start})
	for i := 1; i <= n; i++ {
		prefix, _ := b.Slice(0, i)
		out = append(out, CharPosition{Index: i, X: start + measureWidth(m, prefix, font)})
	}
	return out
}

// Locate maps a host x coordinate to the nearest caret index in text.
//
// Distance ties resolve to the lowest index. Empty text maps to 0.
func Locate(x float64, text string, m TextMeasurer, font Font, originX, offset float64) int {
	best, bestDist := 0, math.Inf(1)
	for _, p := range Positions(text, m, font, originX, offset) {
		if d := math.Abs(x - p.X); d < bestDist {
			best, bestDist = p.Index, d
		}
	}
	return best
}

func measureWidth(m TextMeasurer, text string, font Font) float64 {
	if m == nil || text == "" {
		return 0
	}
	metrics, err := m.Measure(text, font)
	if err != nil {
		return 0
	}
	return metrics.Width
}
