// Package cover computes the boxes that paint over original glyphs once a
// run has been converted into an editable overlay.
//
// [FromBounds] turns a run's viewport bounds into a padded box in PDF units
// for export-time redaction, [SplitByLines] keeps covers off table rules, and
// [Mask] rasterises covers for previewing the page with the original text
// removed.
package cover
