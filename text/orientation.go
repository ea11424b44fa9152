package text

import (
	"math"

	"github.com/tsawler/textlayer/model"
)

// verticalRatio is how much larger |b| must be than |a| before a glyph is
// treated as vertical. Horizontal text with minor skew stays horizontal.
const verticalRatio = 1.2

// Orientation classifies how a glyph or run is laid out on the page
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
	// Rotated is horizontal-axis text turned by roughly a quarter turn
	Rotated
)

// String returns a string representation of the orientation
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Rotated:
		return "rotated"
	default:
		return "horizontal"
	}
}

// xAxis returns the a and b components of the item's transform
func xAxis(item *model.GlyphItem) (a, b float64, ok bool) {
	if item == nil || len(item.Transform) < 2 {
		return 0, 0, false
	}
	a, b = item.Transform[0], item.Transform[1]
	if !isFinite(a) || !isFinite(b) {
		return 0, 0, false
	}
	return a, b, true
}

// RotationDegrees returns the rotation of the item's x-axis in degrees,
// rounded to two decimals and normalized into (-180, 180]. Items with a
// missing or non-finite transform report 0.
func RotationDegrees(item *model.GlyphItem) float64 {
	a, b, ok := xAxis(item)
	if !ok {
		return 0
	}
	degree := math.Atan2(b, a) * 180 / math.Pi
	if !isFinite(degree) {
		return 0
	}
	return NormalizeDegrees(math.Round(degree*100) / 100)
}

// NormalizeDegrees folds an angle into (-180, 180]
func NormalizeDegrees(degree float64) float64 {
	if !isFinite(degree) {
		return 0
	}
	for degree > 180 {
		degree -= 360
	}
	for degree <= -180 {
		degree += 360
	}
	return degree
}

// IsVertical reports whether the item's x-axis projects mostly onto the
// page's vertical axis (|b| > |a| * 1.2). Missing transforms are horizontal.
func IsVertical(item *model.GlyphItem) bool {
	a, b, ok := xAxis(item)
	if !ok {
		return false
	}
	return math.Abs(b) > math.Abs(a)*verticalRatio
}

// ClassifyOrientation maps the vertical flag and a rotation angle to an
// Orientation. Non-vertical text within ten degrees of a quarter turn is
// Rotated.
func ClassifyOrientation(vertical bool, rotation float64) Orientation {
	if vertical {
		return Vertical
	}
	deg := math.Abs(rotation)
	if !isFinite(deg) {
		return Horizontal
	}
	if (deg >= 80 && deg <= 100) || (deg >= 260 && deg <= 280) {
		return Rotated
	}
	return Horizontal
}

// OrientationOf classifies a single glyph item
func OrientationOf(item *model.GlyphItem) Orientation {
	return ClassifyOrientation(IsVertical(item), RotationDegrees(item))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
