package layout

import "math"

// GapSample describes a candidate split of one line at its widest gap
type GapSample struct {
	MaxGap            float64
	LineWidth         float64
	BaseFontSize      float64
	SegmentCharCounts []int
	SegmentWidths     []float64
}

// ShouldSplitByGap reports whether a line should be split at its widest gap.
// A split needs a gap that is large in absolute terms and relative to the
// line, with enough text on every side that neither piece is a stray
// character or a bullet.
func ShouldSplitByGap(g GapGuardrails, s GapSample) bool {
	minGap := math.Max(s.BaseFontSize*g.MinGapFontFactor, g.MinGapPx)
	if math.IsNaN(s.MaxGap) || math.IsInf(s.MaxGap, 0) || s.MaxGap < minGap {
		return false
	}

	for _, c := range s.SegmentCharCounts {
		if c < g.MinSegmentChars {
			return false
		}
	}

	minWidth := math.Max(s.BaseFontSize*g.MinSegmentFontFactor, g.MinSegmentWidth)
	for _, w := range s.SegmentWidths {
		if w < minWidth {
			return false
		}
	}

	if s.LineWidth > 0 && !math.IsInf(s.LineWidth, 0) && s.MaxGap/s.LineWidth < g.MinGapRatio {
		return false
	}
	return true
}
