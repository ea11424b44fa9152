package ocr

import (
	"image"

	"github.com/tsawler/textlayer/model"
)

// Word is one recognized word with its pixel box in the scanned image
type Word struct {
	Text       string
	Box        image.Rectangle
	Confidence float64 // 0..100

	// Block, Paragraph and Line identify the word's text line
	Block     int
	Paragraph int
	Line      int
}

func (w Word) sameLine(other Word) bool {
	return w.Block == other.Block && w.Paragraph == other.Paragraph && w.Line == other.Line
}

// GlyphOptions controls how recognized words become glyph items
type GlyphOptions struct {
	// PageHeight is the PDF page height in points
	PageHeight float64

	// Scale is the image resolution in pixels per point (for instance 300/72
	// for a 300 DPI scan). Values <= 0 are treated as 1.
	Scale float64

	// MinConfidence drops words recognized below this confidence
	MinConfidence float64

	// Color is assigned to every glyph
	Color string
}

// DefaultGlyphOptions returns options for a 300 DPI scan of a US Letter page
func DefaultGlyphOptions() GlyphOptions {
	return GlyphOptions{
		PageHeight:    792,
		Scale:         300.0 / 72.0,
		MinConfidence: 30,
		Color:         "#000000",
	}
}

// WordsToGlyphs converts recognized words into glyph items in PDF page
// space. Each word becomes one item with an upright transform anchored at
// the word's bottom-left corner. Words followed by another word on the same
// line carry a trailing space; the last word of a line sets HasEOL.
func WordsToGlyphs(words []Word, opts GlyphOptions) []model.GlyphItem {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	kept := make([]Word, 0, len(words))
	for _, w := range words {
		if w.Text == "" || w.Box.Empty() || w.Confidence < opts.MinConfidence {
			continue
		}
		kept = append(kept, w)
	}

	items := make([]model.GlyphItem, 0, len(kept))
	for i, w := range kept {
		endOfLine := i == len(kept)-1 || !w.sameLine(kept[i+1])
		text := w.Text
		if !endOfLine {
			text += " "
		}

		x := float64(w.Box.Min.X) / scale
		baseline := opts.PageHeight - float64(w.Box.Max.Y)/scale
		items = append(items, model.GlyphItem{
			Text:      text,
			Transform: []float64{1, 0, 0, 1, x, baseline},
			Width:     float64(w.Box.Dx()) / scale,
			Height:    float64(w.Box.Dy()) / scale,
			Color:     opts.Color,
			HasEOL:    endOfLine,
		})
	}
	return items
}
