package editor

import (
	"strings"

	"github.com/iw2rmb/lineedit/buffer"
	graphemeutil "github.com/iw2rmb/lineedit/internal/grapheme"
)

// renderCells renders the cells of the field inside [-Offset, -Offset+width),
// treating one measurement unit as one terminal cell.
func (e *Engine) renderCells(st Style, width, tabWidth int, placeholder string) string {
	if width <= 0 {
		return ""
	}

	showCaret := e.focused && e.caret.Visible
	text := e.buf.Text()
	if text == "" {
		return renderPlaceholder(st, width, placeholder, showCaret)
	}

	left := int(-e.scroll.Offset)
	right := left + width
	lo, hi := e.sel.Normalized()
	caret := e.sel.Start

	var sb strings.Builder
	col, unit := 0, 0
	for _, c := range graphemeutil.Split(text) {
		w := graphemeutil.Width(c, col, tabWidth)
		n := buffer.UnitLen(c)
		if col >= left && col+w <= right {
			glyph := c
			if c == "\t" {
				glyph = strings.Repeat(" ", w)
			}
			switch {
			case showCaret && caret >= unit && caret < unit+n:
				sb.WriteString(st.Cursor.Render(glyph))
			case unit >= lo && unit < hi:
				sb.WriteString(st.Selection.Render(glyph))
			default:
				sb.WriteString(st.Text.Render(glyph))
			}
		}
		col += w
		unit += n
	}

	if showCaret && caret >= unit && col >= left && col < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func renderPlaceholder(st Style, width int, placeholder string, showCaret bool) string {
	var sb strings.Builder
	if showCaret {
		sb.WriteString(st.Cursor.Render(" "))
		width--
	}
	if placeholder == "" || width <= 0 {
		return sb.String()
	}

	col := 0
	var visible strings.Builder
	for _, c := range graphemeutil.Split(placeholder) {
		w := graphemeutil.Width(c, col, 0)
		if col+w > width {
			break
		}
		visible.WriteString(c)
		col += w
	}
	sb.WriteString(st.Placeholder.Render(visible.String()))
	return sb.String()
}
