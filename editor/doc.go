// Package editor provides the interaction engine for a single-line text field
// and a Bubble Tea component that hosts it.
//
// Engine turns queued input actions (keys, pointer, drop, focus) into edits of
// a buffer.Buffer and a buffer.Selection, and derives the caret's visual state
// (caret x, selection extent, horizontal scroll offset) from a TextMeasurer.
//
// Hosts drive two hooks per frame, in order:
//
//	e.LogicalUpdate()    // applies at most one queued action
//	e.SetLayout(layout)  // once layout is final for the frame
//	e.PostLayoutUpdate() // recomputes caret visuals if the selection changed
//
// Model wires an Engine into a Bubble Tea program using terminal cells as the
// measurement unit.
package editor
