// Package textlayer reconstructs editable text runs from the positioned
// glyph items of a PDF page and tracks which original glyphs are hidden
// behind edit overlays.
//
// Basic usage:
//
//	runs, warnings, err := textlayer.FromGlyphs(items).Runs()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", textlayer.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := textlayer.FromGlyphs(items).
//	    FlipY(792, 1.5).
//	    SplitWideGaps().
//	    Text()
//
// Interactive editing goes through the page package, which keeps a claim
// ledger per page; [Extractor.Controller] sets one up from the same options.
// For advanced use cases the layout, ledger, hittest and dom packages are
// available directly.
package textlayer

import (
	"github.com/tsawler/textlayer/model"
	"github.com/tsawler/textlayer/ocr"
)

// FromGlyphs returns an Extractor over a page's glyph items. The slice is
// not copied; do not modify it while the Extractor is in use.
//
// Example:
//
//	runs, warnings, err := textlayer.FromGlyphs(items).Runs()
func FromGlyphs(items []model.GlyphItem) *Extractor {
	return &Extractor{
		items:   items,
		options: defaultOptions(),
	}
}

// FromScan recognizes a scanned page image and returns an Extractor over
// the recognized words. Recognition errors, including ocr.ErrOCRNotEnabled
// for builds without the "ocr" tag, surface from the terminal operation.
//
// Example:
//
//	text, _, err := textlayer.FromScan(png, ocr.DefaultGlyphOptions()).Text()
func FromScan(imageData []byte, opts ocr.GlyphOptions) *Extractor {
	e := FromGlyphs(nil)

	client, err := ocr.New()
	if err != nil {
		e.err = err
		return e
	}
	defer client.Close()

	items, err := client.Glyphs(imageData, opts)
	if err != nil {
		e.err = err
		return e
	}
	e.items = items
	return e.FlipY(opts.PageHeight, 1)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	ctrl := textlayer.Must(textlayer.FromGlyphs(items).Controller(1))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text(), Runs() or Paragraphs()
// and panics if the error is non-nil. It discards warnings and returns just
// the value.
//
// Example:
//
//	runs := textlayer.MustText(textlayer.FromGlyphs(items).Runs())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
