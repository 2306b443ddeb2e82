// Package buffer implements the single-line text model edited by the editor
// package.
//
// Indices count UTF-16 code units, matching the measurement contract of text
// rendering backends. A Selection is an unordered pair of such indices.
package buffer
