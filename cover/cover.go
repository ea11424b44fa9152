package cover

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/tsawler/textlayer/model"
)

// DefaultPadding is the padding, in viewport pixels, added around a run's
// bounds before the cover box is converted to PDF units
const DefaultPadding = 2.0

// DefaultRuleGap is the band, in viewport pixels, left uncovered around a
// ruled line
const DefaultRuleGap = 1.0

// Size is a width/height pair
type Size struct {
	Width, Height float64
}

// Box is a cover box in PDF units. The offsets are relative to the run's
// top-left corner and are negative by the padding.
type Box struct {
	OffsetX, OffsetY float64
	Width, Height    float64
}

// IsZero reports whether the box has no area
func (b Box) IsZero() bool {
	return b.Width <= 0 || b.Height <= 0
}

// FromBounds converts a run's viewport bounds into a padded cover box in PDF
// units. viewport is the rendered page size in pixels and page the PDF page
// size in points. An axis with zero viewport size yields zero offset and
// extent on that axis.
func FromBounds(bounds model.Rect, viewport, page Size, padding float64) Box {
	var pxToPdfX, pxToPdfY float64
	if viewport.Width > 0 {
		pxToPdfX = page.Width / viewport.Width
	}
	if viewport.Height > 0 {
		pxToPdfY = page.Height / viewport.Height
	}

	return Box{
		OffsetX: -padding * pxToPdfX,
		OffsetY: -padding * pxToPdfY,
		Width:   (bounds.Width() + padding*2) * pxToPdfX,
		Height:  (bounds.Height() + padding*2) * pxToPdfY,
	}
}

// SplitByLines cuts rectangles at horizontal ruled lines (given as y
// positions) that pass strictly through them. Each piece stops gap/2 short
// of the line, so a cover painted from the pieces leaves a band of height
// gap around every rule. Rectangles a line only touches are kept whole.
func SplitByLines(rects []model.Rect, horizontal []float64, gap float64) []model.Rect {
	if len(horizontal) == 0 {
		return rects
	}
	half := math.Max(gap, 0) / 2

	out := make([]model.Rect, 0, len(rects))
	for _, rect := range rects {
		splits := []model.Rect{rect}
		for _, y := range horizontal {
			next := make([]model.Rect, 0, len(splits)+1)
			for _, r := range splits {
				if y <= r.Top || y >= r.Bottom {
					next = append(next, r)
					continue
				}
				upper, lower := r, r
				upper.Bottom = y - half
				lower.Top = y + half
				if upper.Bottom > upper.Top {
					next = append(next, upper)
				}
				if lower.Bottom > lower.Top {
					next = append(next, lower)
				}
			}
			splits = next
		}
		out = append(out, splits...)
	}
	return out
}

// Mask rasterises rectangles into an alpha mask of the given size. Covered
// pixels are opaque; partial coverage at fractional edges is anti-aliased.
func Mask(width, height int, rects []model.Rect) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return mask
	}

	bounds := model.Rect{Right: float64(width), Bottom: float64(height)}
	z := vector.NewRasterizer(width, height)
	drawn := false
	for _, r := range rects {
		r, ok := clip(r, bounds)
		if !ok {
			continue
		}
		z.MoveTo(float32(r.Left), float32(r.Top))
		z.LineTo(float32(r.Right), float32(r.Top))
		z.LineTo(float32(r.Right), float32(r.Bottom))
		z.LineTo(float32(r.Left), float32(r.Bottom))
		z.ClosePath()
		drawn = true
	}
	if drawn {
		z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	}
	return mask
}

// Apply paints src over dst wherever the mask is set. The mask's top-left
// corner is aligned with dst's.
func Apply(dst draw.Image, mask *image.Alpha, src image.Image) {
	draw.DrawMask(dst, dst.Bounds(), src, image.Point{}, mask, mask.Bounds().Min, draw.Over)
}

func clip(r, bounds model.Rect) (model.Rect, bool) {
	if !r.IsFinite() {
		return model.Rect{}, false
	}
	out := model.Rect{
		Left:   math.Max(r.Left, bounds.Left),
		Top:    math.Max(r.Top, bounds.Top),
		Right:  math.Min(r.Right, bounds.Right),
		Bottom: math.Min(r.Bottom, bounds.Bottom),
	}
	if out.Right <= out.Left || out.Bottom <= out.Top {
		return model.Rect{}, false
	}
	return out, true
}
