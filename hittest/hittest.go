package hittest

import (
	"sort"

	"github.com/tsawler/textlayer/ledger"
	"github.com/tsawler/textlayer/model"
)

// IndexAttr is the attribute that carries a text-layer node's glyph index
const IndexAttr = "data-idx"

// Selection is a rectangle as entered by the user. Width and Height may be
// negative when the drag went up or to the left.
type Selection struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the selection with its corners ordered
func (s Selection) Rect() model.Rect {
	return model.RectFromPoints(
		model.Point{X: s.X, Y: s.Y},
		model.Point{X: s.X + s.Width, Y: s.Y + s.Height},
	)
}

// SelectionFromRect converts a rectangle into a Selection
func SelectionFromRect(r model.Rect) Selection {
	return Selection{X: r.Left, Y: r.Top, Width: r.Width(), Height: r.Height()}
}

// Strategy tells IndicesInRect how to inspect one kind of candidate.
// A nil field falls back to the method-based default: see Element.
type Strategy[C any] struct {
	// IsLive reports whether the candidate is still attached and visible
	IsLive func(c C) bool

	// GetRect returns the candidate's absolute rectangle
	GetRect func(c C) (model.Rect, bool)

	// IndexOf returns the candidate's raw glyph index (an int, a string
	// attribute value, ...). It is parsed with ledger.ParseIndex.
	IndexOf func(c C) (any, bool)
}

// Query is the input to IndicesInRect
type Query[C any] struct {
	// Rect is the selection, relative to the container. Nil selects nothing.
	Rect *Selection

	// Candidates are tested in order
	Candidates []C

	// Origin is the container's absolute top-left corner; it is subtracted
	// from each candidate rectangle. Use the zero point for candidates that
	// are already container-relative. Nil selects nothing.
	Origin *model.Point

	Strategy Strategy[C]
}

// IndicesInRect returns the glyph indices of every live candidate whose
// container-relative rectangle strictly overlaps the selection. Indices are
// unique; their order is not significant (use Sorted when it matters).
// Missing input yields an empty result, never an error.
func IndicesInRect[C any](q Query[C]) []int {
	if q.Rect == nil || len(q.Candidates) == 0 || q.Origin == nil {
		return []int{}
	}
	selection := q.Rect.Rect()
	if !selection.IsFinite() {
		return []int{}
	}
	strategy := q.Strategy.withDefaults()

	indices := make([]int, 0)
	seen := make(map[int]bool)
	for _, c := range q.Candidates {
		if !strategy.IsLive(c) {
			continue
		}
		r, ok := strategy.GetRect(c)
		if !ok {
			continue
		}
		relative := r.Translate(-q.Origin.X, -q.Origin.Y)
		if !relative.Intersects(selection) {
			continue
		}
		raw, ok := strategy.IndexOf(c)
		if !ok {
			continue
		}
		idx, ok := ledger.ParseIndex(raw)
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	return indices
}

// Sorted returns an ascending copy of indices
func Sorted(indices []int) []int {
	out := append([]int(nil), indices...)
	sort.Ints(out)
	return out
}

func (s Strategy[C]) withDefaults() Strategy[C] {
	if s.IsLive == nil {
		s.IsLive = defaultIsLive[C]
	}
	if s.GetRect == nil {
		s.GetRect = defaultGetRect[C]
	}
	if s.IndexOf == nil {
		s.IndexOf = defaultIndexOf[C]
	}
	return s
}
