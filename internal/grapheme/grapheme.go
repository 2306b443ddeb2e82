// Package grapheme splits text into grapheme clusters and measures them in
// terminal cells.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is used when a caller passes a non-positive tab width.
const DefaultTabWidth = 4

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the cell width of a single cluster drawn at visual column col.
// Tabs advance to the next tab stop.
func Width(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		if tabWidth <= 0 {
			tabWidth = DefaultTabWidth
		}
		return tabWidth - col%tabWidth
	}

	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// runewidth reports zero for some emoji sequences uniseg measures.
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// StringWidth returns the total cell width of text starting at column 0.
func StringWidth(text string, tabWidth int) int {
	col := 0
	for _, c := range Split(text) {
		col += Width(c, col, tabWidth)
	}
	return col
}
