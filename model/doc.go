// Package model provides the shared data types used across the text-layer
// packages.
//
// # Glyph Items
//
// A [GlyphItem] is one positioned text fragment handed over by the PDF
// rendering collaborator. Pages deliver items as a slice and the index into
// that slice is the stable handle for a glyph:
//
//	items := renderer.TextItems(page)
//	box, ok := model.GlyphRect(&items[3])
//
// Slices are regenerated on every render, so anything that must survive a
// render refers to glyphs by integer index, never by pointer.
//
// # Geometry
//
// Geometric primitives support hit-testing and run bounds:
//
//   - [Rect] - y-down rectangle with strict intersection and union
//   - [Point] - 2D point with distance calculation
//   - [Matrix] - 2D affine transformation matrix
package model
