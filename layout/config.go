package layout

// RunConfig holds the tunable thresholds used to decide where text runs
// break. The defaults were chosen empirically against real documents; treat
// them as heuristics rather than invariants.
type RunConfig struct {
	// RotationDriftDegrees is the largest circular rotation difference
	// between neighbouring glyphs that still continues a run (default: 8)
	RotationDriftDegrees float64

	// AxisThresholdFactor scales the larger major dimension (width for
	// vertical text, height for horizontal text) to get the largest
	// primary-axis jump that still continues a run (default: 0.6)
	AxisThresholdFactor float64

	// MinAxisThreshold is the floor for the primary-axis jump (default: 1)
	MinAxisThreshold float64

	// DimensionDriftFactor scales the larger cross dimension to get the
	// largest size difference that still continues a run (default: 0.45)
	DimensionDriftFactor float64

	// MinDimensionDrift is the floor for the size difference (default: 1)
	MinDimensionDrift float64

	// SpacerGapFactor scales the neighbour's size to decide whether a
	// zero-height (or zero-width, for vertical text) spacer item is a real
	// gap (default: 0.6)
	SpacerGapFactor float64

	// MinSpacerGap is the floor for the spacer gap (default: 8)
	MinSpacerGap float64

	// BreakOnReadGap enables an extra break when the distance between
	// neighbours along the reading direction is large (default: false)
	BreakOnReadGap bool

	// ReadGapFactor scales the current glyph's size for the read-gap rule
	// (default: 1.5)
	ReadGapFactor float64

	// MinReadGap is the floor for the read-gap rule (default: 8)
	MinReadGap float64
}

// DefaultRunConfig returns the default run-breaking thresholds
func DefaultRunConfig() RunConfig {
	return RunConfig{
		RotationDriftDegrees: 8,
		AxisThresholdFactor:  0.6,
		MinAxisThreshold:     1,
		DimensionDriftFactor: 0.45,
		MinDimensionDrift:    1,
		SpacerGapFactor:      0.6,
		MinSpacerGap:         8,
		BreakOnReadGap:       false,
		ReadGapFactor:        1.5,
		MinReadGap:           8,
	}
}

// GapGuardrails decides when a horizontal run with a wide internal gap is
// split in two. Every guardrail must pass before a split happens.
type GapGuardrails struct {
	// MinGapFontFactor and MinGapPx give the smallest gap considered:
	// max(fontSize*MinGapFontFactor, MinGapPx) (defaults: 6, 60)
	MinGapFontFactor float64
	MinGapPx         float64

	// MinSegmentChars is the fewest characters each side may have (default: 3)
	MinSegmentChars int

	// MinSegmentFontFactor and MinSegmentWidth give the narrowest side:
	// max(fontSize*MinSegmentFontFactor, MinSegmentWidth) (defaults: 3, 24)
	MinSegmentFontFactor float64
	MinSegmentWidth      float64

	// MinGapRatio is the smallest gap/line-width ratio (default: 0.12)
	MinGapRatio float64
}

// DefaultGapGuardrails returns the default wide-gap guardrails
func DefaultGapGuardrails() GapGuardrails {
	return GapGuardrails{
		MinGapFontFactor:     6,
		MinGapPx:             60,
		MinSegmentChars:      3,
		MinSegmentFontFactor: 3,
		MinSegmentWidth:      24,
		MinGapRatio:          0.12,
	}
}

// ParagraphConfig holds configuration for grouping runs into paragraphs
type ParagraphConfig struct {
	// FontSizeTolerance is the largest font size difference between lines
	// of one paragraph (default: 0.5)
	FontSizeTolerance float64

	// MaxGapFactor scales the font size to get the largest line gap
	// (default: 1.9)
	MaxGapFactor float64

	// AverageGapFactor scales the running average line gap; the larger of
	// the two limits applies (default: 1.4)
	AverageGapFactor float64

	// AlignFactor scales the font size to get the left-edge tolerance for
	// continuation lines (default: 0.6)
	AlignFactor float64

	// IndentFactor scales the font size to get the largest first-line
	// indent (default: 2.2)
	IndentFactor float64
}

// DefaultParagraphConfig returns sensible default configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		FontSizeTolerance: 0.5,
		MaxGapFactor:      1.9,
		AverageGapFactor:  1.4,
		AlignFactor:       0.6,
		IndentFactor:      2.2,
	}
}
