package cover

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tsawler/textlayer/model"
)

func TestFromBounds(t *testing.T) {
	bounds := model.RectFromXYWH(40, 300, 100, 20)
	letter := Size{Width: 612, Height: 792}

	tests := []struct {
		name     string
		viewport Size
		padding  float64
		want     Box
	}{
		{
			name:     "double scale",
			viewport: Size{Width: 1224, Height: 1584},
			padding:  DefaultPadding,
			want:     Box{OffsetX: -1, OffsetY: -1, Width: 52, Height: 12},
		},
		{
			name:     "unit scale without padding",
			viewport: letter,
			padding:  0,
			want:     Box{Width: 100, Height: 20},
		},
		{
			name:     "zero viewport",
			viewport: Size{},
			padding:  DefaultPadding,
			want:     Box{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromBounds(bounds, tt.viewport, letter, tt.padding)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("FromBounds() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if !FromBounds(bounds, Size{}, letter, 2).IsZero() {
		t.Error("box for a zero viewport should be zero")
	}
}

func TestSplitByLines(t *testing.T) {
	rects := []model.Rect{
		{Left: 0, Top: 0, Right: 50, Bottom: 30},
		{Left: 60, Top: 40, Right: 90, Bottom: 50},
	}

	tests := []struct {
		name  string
		lines []float64
		gap   float64
		want  []model.Rect
	}{
		{
			name:  "no gap",
			lines: []float64{10, 20, 40},
			want: []model.Rect{
				{Left: 0, Top: 0, Right: 50, Bottom: 10},
				{Left: 0, Top: 10, Right: 50, Bottom: 20},
				{Left: 0, Top: 20, Right: 50, Bottom: 30},
				{Left: 60, Top: 40, Right: 90, Bottom: 50},
			},
		},
		{
			name:  "gap around rule",
			lines: []float64{10},
			gap:   2,
			want: []model.Rect{
				{Left: 0, Top: 0, Right: 50, Bottom: 9},
				{Left: 0, Top: 11, Right: 50, Bottom: 30},
				{Left: 60, Top: 40, Right: 90, Bottom: 50},
			},
		},
		{
			name:  "gap swallows thin piece",
			lines: []float64{41},
			gap:   4,
			want: []model.Rect{
				{Left: 0, Top: 0, Right: 50, Bottom: 30},
				{Left: 60, Top: 43, Right: 90, Bottom: 50},
			},
		},
		{
			name: "no lines",
			gap:  2,
			want: rects,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitByLines(rects, tt.lines, tt.gap)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitByLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMask(t *testing.T) {
	mask := Mask(10, 10, []model.Rect{
		{Left: 2, Top: 2, Right: 6, Bottom: 6},
		{Left: 8, Top: -5, Right: 20, Bottom: 1},
		{Left: math.NaN(), Top: 0, Right: 1, Bottom: 1},
	})

	tests := []struct {
		x, y    int
		covered bool
	}{
		{3, 3, true},
		{5, 5, true},
		{7, 7, false},
		{0, 9, false},
		{9, 0, true},
		{8, 5, false},
	}
	for _, tt := range tests {
		a := mask.AlphaAt(tt.x, tt.y).A
		if tt.covered && a < 0xf0 {
			t.Errorf("pixel (%d,%d) alpha = %#x, want covered", tt.x, tt.y, a)
		}
		if !tt.covered && a != 0 {
			t.Errorf("pixel (%d,%d) alpha = %#x, want clear", tt.x, tt.y, a)
		}
	}
}

func TestMaskEmpty(t *testing.T) {
	mask := Mask(4, 4, nil)
	for _, a := range mask.Pix {
		if a != 0 {
			t.Fatal("empty mask has covered pixels")
		}
	}
	if got := Mask(0, 0, []model.Rect{{Right: 1, Bottom: 1}}); !got.Bounds().Empty() {
		t.Error("zero-size mask should have empty bounds")
	}
}

func TestApply(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	mask := Mask(10, 10, []model.Rect{{Left: 0, Top: 0, Right: 5, Bottom: 10}})
	Apply(dst, mask, image.NewUniform(color.Black))

	if got := dst.RGBAAt(2, 5); got.R > 0x10 {
		t.Errorf("covered pixel = %v, want black", got)
	}
	if got := dst.RGBAAt(7, 5); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("uncovered pixel = %v, want white", got)
	}
}
