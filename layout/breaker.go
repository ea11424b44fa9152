package layout

import (
	"math"

	"github.com/tsawler/textlayer/model"
	"github.com/tsawler/textlayer/text"
)

// BreakReason records which rule ended a run
type BreakReason int

const (
	ReasonNone BreakReason = iota
	ReasonMissing
	ReasonColor
	ReasonRotation
	ReasonOrientation
	ReasonAxisPosition
	ReasonReadGap
	ReasonSpacer
	ReasonDimension
	ReasonEOL
	ReasonWideGap
	ReasonEnd
)

// String returns a string representation of the reason
func (r BreakReason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonColor:
		return "color"
	case ReasonRotation:
		return "rotation"
	case ReasonOrientation:
		return "orientation"
	case ReasonAxisPosition:
		return "axis-position"
	case ReasonReadGap:
		return "read-gap"
	case ReasonSpacer:
		return "spacer"
	case ReasonDimension:
		return "dimension"
	case ReasonEOL:
		return "eol"
	case ReasonWideGap:
		return "wide-gap"
	case ReasonEnd:
		return "end"
	default:
		return "none"
	}
}

// Decision is the outcome of comparing two neighbouring glyphs
type Decision struct {
	Break  bool
	Reason BreakReason
}

func breakFor(reason BreakReason) Decision {
	return Decision{Break: true, Reason: reason}
}

var keep = Decision{}

// Breaker decides whether neighbouring glyph items belong to the same run
type Breaker struct {
	config RunConfig
}

// NewBreaker creates a breaker with default configuration
func NewBreaker() *Breaker {
	return &Breaker{config: DefaultRunConfig()}
}

// NewBreakerWithConfig creates a breaker with custom configuration
func NewBreakerWithConfig(config RunConfig) *Breaker {
	return &Breaker{config: config}
}

// Config returns the breaker's configuration
func (b *Breaker) Config() RunConfig {
	return b.config
}

var defaultBreaker = NewBreaker()

// ShouldBreakRun reports whether a new run must start at next, using the
// default thresholds
func ShouldBreakRun(current, next *model.GlyphItem) bool {
	return defaultBreaker.Decide(current, next).Break
}

// Decide applies the break rules in order; the first rule that fires wins.
//
//  1. a missing item always breaks
//  2. a color change breaks
//  3. a circular rotation drift above RotationDriftDegrees breaks
//  4. a vertical/horizontal mismatch breaks
//  5. a primary-axis jump above the axis threshold breaks
//  6. with BreakOnReadGap, a large gap along the reading direction breaks
//  7. a zero-size spacer wider than the spacer gap, or a cross-axis size
//     drift above the dimension threshold, breaks
func (b *Breaker) Decide(current, next *model.GlyphItem) Decision {
	if current == nil || next == nil {
		return breakFor(ReasonMissing)
	}

	if current.Color != next.Color {
		return breakFor(ReasonColor)
	}

	if b.rotationDrift(current, next) > b.config.RotationDriftDegrees {
		return breakFor(ReasonRotation)
	}

	vertical := text.IsVertical(current)
	if vertical != text.IsVertical(next) {
		return breakFor(ReasonOrientation)
	}

	if b.hasAxisJump(current, next, vertical) {
		return breakFor(ReasonAxisPosition)
	}

	if b.config.BreakOnReadGap && b.hasLargeReadGap(current, next, vertical) {
		return breakFor(ReasonReadGap)
	}

	return b.crossAxis(current, next, vertical)
}

// rotationDrift returns the circular distance between the two rotations
func (b *Breaker) rotationDrift(current, next *model.GlyphItem) float64 {
	drift := math.Abs(text.RotationDegrees(next) - text.RotationDegrees(current))
	if drift > 180 {
		drift = 360 - drift
	}
	return drift
}

// axisPosition returns the coordinate a run keeps constant: x for vertical
// text, y (the baseline) for horizontal text
func axisPosition(item *model.GlyphItem, vertical bool) (float64, bool) {
	if vertical {
		return item.Component(4)
	}
	return item.Component(5)
}

func (b *Breaker) hasAxisJump(current, next *model.GlyphItem, vertical bool) bool {
	pos1, ok1 := axisPosition(current, vertical)
	pos2, ok2 := axisPosition(next, vertical)
	if !ok1 || !ok2 {
		return false
	}

	var majorSize float64
	if vertical {
		majorSize = math.Max(current.FiniteWidth(), next.FiniteWidth())
	} else {
		majorSize = math.Max(current.FiniteHeight(), next.FiniteHeight())
	}
	threshold := math.Max(b.config.MinAxisThreshold, majorSize*b.config.AxisThresholdFactor)
	return math.Abs(pos2-pos1) > threshold
}

// readGap returns the empty distance between the two items along the
// reading direction (y for vertical text, x for horizontal text)
func readGap(current, next *model.GlyphItem, vertical bool) float64 {
	idx := 4
	if vertical {
		idx = 5
	}
	p1, ok1 := current.Component(idx)
	p2, ok2 := next.Component(idx)
	if !ok1 || !ok2 {
		return 0
	}

	size1, size2 := current.FiniteWidth(), next.FiniteWidth()
	if vertical {
		size1, size2 = current.FiniteHeight(), next.FiniteHeight()
	}
	if p1 < p2 {
		return p2 - (p1 + size1)
	}
	return p1 - (p2 + size2)
}

func (b *Breaker) hasLargeReadGap(current, next *model.GlyphItem, vertical bool) bool {
	size := current.FiniteHeight()
	if vertical {
		size = current.FiniteWidth()
	}
	threshold := math.Max(b.config.MinReadGap, size*b.config.ReadGapFactor)
	return readGap(current, next, vertical) > threshold
}

// crossAxis compares sizes across the run: heights for horizontal text,
// widths for vertical text. Zero-size items are kerning spacers and only
// break the run when their other dimension is a real gap.
func (b *Breaker) crossAxis(current, next *model.GlyphItem, vertical bool) Decision {
	dim1, dim2 := current.FiniteHeight(), next.FiniteHeight()
	other1, other2 := current.FiniteWidth(), next.FiniteWidth()
	if vertical {
		dim1, dim2 = current.FiniteWidth(), next.FiniteWidth()
		other1, other2 = current.FiniteHeight(), next.FiniteHeight()
	}

	if dim1 == 0 && dim2 > 0 {
		threshold := math.Max(b.config.MinSpacerGap, dim2*b.config.SpacerGapFactor)
		if other1 > threshold {
			return breakFor(ReasonSpacer)
		}
		return keep
	}

	if dim2 == 0 {
		threshold := math.Max(b.config.MinSpacerGap, math.Max(dim1, dim2)*b.config.SpacerGapFactor)
		if other2 > threshold {
			return breakFor(ReasonSpacer)
		}
		return keep
	}

	threshold := math.Max(b.config.MinDimensionDrift, math.Max(dim1, dim2)*b.config.DimensionDriftFactor)
	if math.Abs(dim2-dim1) > threshold {
		return breakFor(ReasonDimension)
	}
	return keep
}
