package page

import (
	"github.com/tsawler/textlayer/cover"
	"github.com/tsawler/textlayer/model"
)

// OverlayKind distinguishes overlays created from runs and from erasures
type OverlayKind int

const (
	// KindText is an editable text overlay replacing a run
	KindText OverlayKind = iota
	// KindErase blanks the glyphs under a drag rectangle
	KindErase
)

// String returns a string representation of the overlay kind
func (k OverlayKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindErase:
		return "erase"
	default:
		return "unknown"
	}
}

// Overlay is an element placed over the page that hides original glyphs
type Overlay struct {
	// ID is the run ID for text overlays (page_run_position) and
	// page_erase_n for erasures
	ID   string
	Kind OverlayKind
	Page int

	// RunIndex is the converted run, -1 for erasures
	RunIndex int

	// Text is the run's NFC-normalised text; the editor starts from it
	Text string

	// Bounds is the container-relative viewport rectangle
	Bounds model.Rect

	// Cover is the padded box, in PDF units, painted over the original
	// glyphs on export
	Cover cover.Box

	// CoverRects are the container-relative pieces of the padded bounds,
	// cut at the page's ruled lines
	CoverRects []model.Rect

	// Indices are the glyph indices this overlay claimed
	Indices []int

	FontName string
	FontSize float64
	Color    string
	Vertical bool
	Rotation float64
}

func (o *Overlay) clone() *Overlay {
	out := *o
	out.Indices = append([]int(nil), o.Indices...)
	out.CoverRects = append([]model.Rect(nil), o.CoverRects...)
	return &out
}
