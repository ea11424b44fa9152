// Package layout reconstructs editable text runs from the positioned glyph
// items of a PDF page.
//
// PDFs encode text as loosely related positioned glyphs. This package walks a
// page's items in order and decides, pair by pair, whether the next glyph
// continues the current run. The rules tolerate floating-point jitter in
// position and size while still splitting at line and column boundaries,
// color changes and rotation changes (stamps, rotated captions).
//
// # Run Segmentation
//
// The [Segmenter] builds runs:
//
//	runs := layout.NewSegmenter().Segment(items)
//	for _, run := range runs {
//	    fmt.Println(run.Text, run.MemberIndices)
//	}
//
// A single pair can be tested with [ShouldBreakRun], or with
// [Breaker.Decide] to learn which rule fired.
//
// # Configuration
//
// Every threshold lives in [RunConfig]:
//
//	config := layout.DefaultRunConfig()
//	config.RotationDriftDegrees = 5
//	config.BreakOnReadGap = true
//	segmenter := layout.NewSegmenterWithConfig(config)
//
// Wide internal gaps (label/value pairs, table rows) can be split with
// [Segmenter.SplitWideGaps], guarded by [GapGuardrails].
//
// # Paragraphs
//
// The [ParagraphDetector] groups consecutive runs into paragraphs by font,
// color, line gap and left alignment. It expects runs measured in a y-down
// viewport (see [ViewportRects]).
package layout
