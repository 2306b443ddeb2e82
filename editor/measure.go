package editor

import (
	graphemeutil "github.com/iw2rmb/lineedit/internal/grapheme"
)

// Font identifies the face text is measured with.
type Font struct {
	Family string
	Size   float64
}

// Metrics is the measured extent of a text run.
type Metrics struct {
	Width  float64
	Ascent float64
}

// TextMeasurer measures text for hit-testing and caret placement.
//
// Measure must be a pure function of its inputs. A returned error is treated as
// a zero Metrics value.
type TextMeasurer interface {
	Measure(text string, font Font) (Metrics, error)
}

// MeasureFunc adapts a function to TextMeasurer.
type MeasureFunc func(text string, font Font) (Metrics, error)

func (f MeasureFunc) Measure(text string, font Font) (Metrics, error) { return f(text, font) }

// CellMeasurer measures text in terminal cells. Font is ignored; tabs expand to
// TabWidth columns.
type CellMeasurer struct {
	TabWidth int
}

func (m CellMeasurer) Measure(text string, _ Font) (Metrics, error) {
	return Metrics{
		Width:  float64(graphemeutil.StringWidth(text, m.TabWidth)),
		Ascent: 1,
	}, nil
}
