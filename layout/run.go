package layout

import (
	"math"

	"github.com/tsawler/textlayer/model"
	"github.com/tsawler/textlayer/text"
)

// Run is a maximal sequence of consecutive glyph indices treated as one
// editable unit. Runs are rebuilt on every render and never persisted.
type Run struct {
	// Index is the run's position in the page's run list
	Index int

	// Text is the joined, trimmed text of the member glyphs in Unicode
	// NFC form: a base letter and a combining mark delivered as separate
	// items compose, so Text may be shorter than the concatenation. Use
	// MemberIndices to recover the exact item texts.
	Text string

	// MemberIndices are the glyph indices in the run, in order
	MemberIndices []int

	// Representative is the first member with non-blank text, or -1 when
	// every member is blank. It is the node that survives a merge.
	Representative int

	// BoundingBox is the union of the member rectangles
	BoundingBox model.Rect

	// HasBox is false when no member produced a rectangle
	HasBox bool

	// RotationDegrees is the rotation of the first non-blank member
	RotationDegrees float64

	// Vertical is true for runs laid out along the page's vertical axis
	Vertical bool

	// Orientation classifies the run as horizontal, vertical or rotated
	Orientation text.Orientation

	// Direction is the dominant text direction (LTR/RTL)
	Direction text.Direction

	// FontSize is the largest member size across the run (height for
	// horizontal runs, width for vertical runs)
	FontSize float64

	// FontName and Color are taken from the representative member
	FontName string
	Color    string

	// EndReason is the rule that ended the run
	EndReason BreakReason
}

// Contains reports whether the glyph index is a member of the run
func (r *Run) Contains(index int) bool {
	for _, m := range r.MemberIndices {
		if m == index {
			return true
		}
	}
	return false
}

// RectFunc returns the display rectangle for the glyph at index. It reports
// false when the glyph has no usable geometry.
type RectFunc func(index int, item *model.GlyphItem) (model.Rect, bool)

// PageRects is the RectFunc used when no rendered geometry is available:
// glyph boxes in page space, anchored at the transform translation.
func PageRects(_ int, item *model.GlyphItem) (model.Rect, bool) {
	return model.GlyphRect(item)
}

// ViewportRects returns a RectFunc mapping glyph boxes from page space into a
// viewport with the given matrix (for instance model.FlipY for a y-down
// screen).
func ViewportRects(viewport model.Matrix) RectFunc {
	return func(_ int, item *model.GlyphItem) (model.Rect, bool) {
		r, ok := model.GlyphRect(item)
		if !ok {
			return model.Rect{}, false
		}
		p1 := viewport.Transform(model.Point{X: r.Left, Y: r.Top})
		p2 := viewport.Transform(model.Point{X: r.Right, Y: r.Bottom})
		return model.RectFromPoints(p1, p2), true
	}
}

// Segmenter partitions a page's glyph items into runs
type Segmenter struct {
	breaker    *Breaker
	guardrails GapGuardrails
	splitGaps  bool
}

// NewSegmenter creates a segmenter with default configuration
func NewSegmenter() *Segmenter {
	return NewSegmenterWithConfig(DefaultRunConfig())
}

// NewSegmenterWithConfig creates a segmenter with custom run thresholds
func NewSegmenterWithConfig(config RunConfig) *Segmenter {
	return &Segmenter{
		breaker:    NewBreakerWithConfig(config),
		guardrails: DefaultGapGuardrails(),
	}
}

// SplitWideGaps enables splitting horizontal runs at a wide internal gap
// (for instance a table row or a tab-separated label/value pair) when every
// guardrail passes
func (s *Segmenter) SplitWideGaps(guardrails GapGuardrails) *Segmenter {
	s.splitGaps = true
	s.guardrails = guardrails
	return s
}

// Segment partitions items into runs using page-space glyph boxes
func (s *Segmenter) Segment(items []model.GlyphItem) []Run {
	return s.SegmentWithRects(items, PageRects)
}

// SegmentWithRects partitions items into runs. Items are processed strictly
// in order: glyph i ends a run when it carries an explicit line break, when
// the breaker rejects the pair (i, i+1), or when it is the last item.
func (s *Segmenter) SegmentWithRects(items []model.GlyphItem, rectOf RectFunc) []Run {
	if len(items) == 0 {
		return nil
	}
	if rectOf == nil {
		rectOf = PageRects
	}

	var runs []Run
	start := 0
	for i := range items {
		var reason BreakReason
		switch {
		case i == len(items)-1:
			reason = ReasonEnd
		case items[i].HasEOL:
			reason = ReasonEOL
		default:
			d := s.breaker.Decide(&items[i], &items[i+1])
			if !d.Break {
				continue
			}
			reason = d.Reason
		}

		members := make([]int, 0, i-start+1)
		for j := start; j <= i; j++ {
			members = append(members, j)
		}
		for _, part := range s.split(items, members, rectOf) {
			run := buildRun(items, part, rectOf)
			run.EndReason = reason
			if len(part) < len(members) && part[len(part)-1] != i {
				run.EndReason = ReasonWideGap
			}
			run.Index = len(runs)
			runs = append(runs, run)
		}
		start = i + 1
	}
	return runs
}

// buildRun assembles a Run from its member indices
func buildRun(items []model.GlyphItem, members []int, rectOf RectFunc) Run {
	run := Run{
		MemberIndices:  members,
		Representative: -1,
	}

	parts := make([]string, 0, len(members))
	for _, idx := range members {
		item := &items[idx]
		parts = append(parts, item.Text)

		if run.Representative < 0 && !text.IsBlank(item.Text) {
			run.Representative = idx
		}

		if r, ok := rectOf(idx, item); ok && r.IsFinite() {
			if run.HasBox {
				run.BoundingBox = run.BoundingBox.Union(r)
			} else {
				run.BoundingBox = r
				run.HasBox = true
			}
		}
	}

	anchor := &items[members[0]]
	if run.Representative >= 0 {
		anchor = &items[run.Representative]
	}
	run.Text = text.JoinRunText(parts)
	run.RotationDegrees = text.RotationDegrees(anchor)
	run.Vertical = text.IsVertical(anchor)
	run.Orientation = text.ClassifyOrientation(run.Vertical, run.RotationDegrees)
	run.Direction = text.DetectDirection(run.Text)
	run.FontName = anchor.FontName
	run.Color = anchor.Color

	for _, idx := range members {
		size := items[idx].FiniteHeight()
		if run.Vertical {
			size = items[idx].FiniteWidth()
		}
		run.FontSize = math.Max(run.FontSize, size)
	}
	return run
}

// split cuts a horizontal member list at wide gaps when enabled. It returns
// the members unchanged when no split applies.
func (s *Segmenter) split(items []model.GlyphItem, members []int, rectOf RectFunc) [][]int {
	if !s.splitGaps || len(members) < 2 || text.IsVertical(&items[members[0]]) {
		return [][]int{members}
	}

	// Find the widest gap between neighbouring boxes
	gapAt := -1
	maxGap := 0.0
	var lineBox model.Rect
	haveBox := false
	var prev model.Rect
	havePrev := false
	for k, idx := range members {
		r, ok := rectOf(idx, &items[idx])
		if !ok || !r.IsFinite() {
			havePrev = false
			continue
		}
		if haveBox {
			lineBox = lineBox.Union(r)
		} else {
			lineBox = r
			haveBox = true
		}
		if havePrev {
			if gap := r.Left - prev.Right; gap > maxGap {
				maxGap = gap
				gapAt = k
			}
		}
		prev = r
		havePrev = true
	}
	if gapAt <= 0 {
		return [][]int{members}
	}

	left, right := members[:gapAt], members[gapAt:]
	fontSize := 0.0
	for _, idx := range members {
		fontSize = math.Max(fontSize, items[idx].FiniteHeight())
	}
	leftBox, _ := unionRects(items, left, rectOf)
	rightBox, _ := unionRects(items, right, rectOf)

	split := ShouldSplitByGap(s.guardrails, GapSample{
		MaxGap:            maxGap,
		LineWidth:         lineBox.Width(),
		BaseFontSize:      fontSize,
		SegmentCharCounts: []int{charCount(items, left), charCount(items, right)},
		SegmentWidths:     []float64{leftBox.Width(), rightBox.Width()},
	})
	if !split {
		return [][]int{members}
	}

	out := s.split(items, left, rectOf)
	return append(out, s.split(items, right, rectOf)...)
}

func unionRects(items []model.GlyphItem, members []int, rectOf RectFunc) (model.Rect, bool) {
	var box model.Rect
	have := false
	for _, idx := range members {
		r, ok := rectOf(idx, &items[idx])
		if !ok || !r.IsFinite() {
			continue
		}
		if have {
			box = box.Union(r)
		} else {
			box = r
			have = true
		}
	}
	return box, have
}

func charCount(items []model.GlyphItem, members []int) int {
	parts := make([]string, 0, len(members))
	for _, idx := range members {
		parts = append(parts, items[idx].Text)
	}
	return len([]rune(text.JoinRunText(parts)))
}
