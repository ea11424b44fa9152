// Package text provides per-glyph geometry and text utilities.
//
// # Orientation
//
// The rotation of a glyph comes from the x-axis of its transform:
//
//	deg := text.RotationDegrees(&item) // in (-180, 180]
//	if text.IsVertical(&item) {
//	    // run progresses along the page's vertical axis
//	}
//
// [IsVertical] uses an asymmetric threshold (|b| > 1.2|a|) so slightly
// skewed horizontal text is never treated as vertical. Items with missing or
// non-finite transforms are horizontal with rotation 0.
//
// # Run Text
//
// [JoinRunText] builds the text of a run from its glyphs, composing split
// combining marks (NFC) and trimming white space.
//
// # Text Direction
//
// [DetectDirection] reports whether text is predominantly left-to-right or
// right-to-left, based on Unicode bidi classes:
//
//	dir := text.DetectDirection("שלום")  // RTL
//	dir := text.DetectDirection("Hello") // LTR
//	dir := text.DetectDirection("123")   // Neutral
package text
