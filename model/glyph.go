package model

import "math"

// GlyphItem is one positioned piece of text extracted from a PDF page by the
// rendering collaborator. A page's items arrive as a slice; the position in
// that slice is the glyph index used by every other package. The slice is
// rebuilt on every render, so state must never hold on to item identity.
type GlyphItem struct {
	// Text is the string content, a single character or a short run
	Text string

	// Transform is the affine matrix [a b c d e f] mapping glyph space to
	// page space. It may be missing or short for malformed content.
	Transform []float64

	// Width and Height are the layout box in page units. Height is 0 for
	// spacer items that only adjust kerning.
	Width  float64
	Height float64

	// Color is an opaque rendering color token, compared for equality only
	Color string

	// HasEOL marks an item that ends a line
	HasEOL bool

	// FontName is the renderer's font key (carried, not interpreted)
	FontName string
}

// Component returns transform element i and whether it is present and finite
func (g *GlyphItem) Component(i int) (float64, bool) {
	if g == nil || i < 0 || i >= len(g.Transform) {
		return 0, false
	}
	v := g.Transform[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Origin returns the translation components (e, f) of the transform
func (g *GlyphItem) Origin() (Point, bool) {
	x, okX := g.Component(4)
	y, okY := g.Component(5)
	if !okX || !okY {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// FiniteWidth returns Width, or 0 when it is not a finite number
func (g *GlyphItem) FiniteWidth() float64 {
	if g == nil || !isFinite(g.Width) {
		return 0
	}
	return g.Width
}

// FiniteHeight returns Height, or 0 when it is not a finite number
func (g *GlyphItem) FiniteHeight() float64 {
	if g == nil || !isFinite(g.Height) {
		return 0
	}
	return g.Height
}

// GlyphRect returns the item's box in page space (y up), anchored at the
// transform's translation. Items without a usable anchor yield false.
func GlyphRect(g *GlyphItem) (Rect, bool) {
	origin, ok := g.Origin()
	if !ok {
		return Rect{}, false
	}
	return RectFromXYWH(origin.X, origin.Y, g.FiniteWidth(), g.FiniteHeight()), true
}
