package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/textlayer/model"
)

// makeLineRun creates a horizontal run with a y-down box
func makeLineRun(index int, txt string, left, top, width, fontSize float64, members ...int) Run {
	return Run{
		Index:          index,
		Text:           txt,
		MemberIndices:  members,
		Representative: members[0],
		BoundingBox:    model.Rect{Left: left, Top: top, Right: left + width, Bottom: top + fontSize},
		HasBox:         true,
		FontSize:       fontSize,
		FontName:       "Helvetica",
		Color:          "#000",
	}
}

func TestParagraphDetector_Empty(t *testing.T) {
	if paras := NewParagraphDetector().Detect(nil); len(paras) != 0 {
		t.Errorf("expected no paragraphs, got %d", len(paras))
	}
}

func TestParagraphDetector_JoinsAlignedLines(t *testing.T) {
	runs := []Run{
		makeLineRun(0, "The quick brown", 72, 100, 200, 12, 0, 1),
		makeLineRun(1, "fox jumps over", 72, 116, 190, 12, 2, 3),
		makeLineRun(2, "the lazy dog.", 72, 132, 150, 12, 4),
	}

	paras := NewParagraphDetector().Detect(runs)
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}

	p := paras[0]
	if p.Text != "The quick brown\nfox jumps over\nthe lazy dog." {
		t.Errorf("Text = %q", p.Text)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, p.Runs); diff != "" {
		t.Errorf("Runs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, p.MemberIndices); diff != "" {
		t.Errorf("MemberIndices mismatch (-want +got):\n%s", diff)
	}
	if p.LineCount != 3 || math.Abs(p.LineHeight-16) > 1e-9 {
		t.Errorf("LineCount = %d, LineHeight = %v", p.LineCount, p.LineHeight)
	}
	want := model.Rect{Left: 72, Top: 100, Right: 272, Bottom: 144}
	if p.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", p.Bounds, want)
	}
}

func TestParagraphDetector_FirstLineIndent(t *testing.T) {
	runs := []Run{
		makeLineRun(0, "Indented opening", 96, 100, 180, 12, 0),
		makeLineRun(1, "continues here", 72, 116, 200, 12, 1),
		makeLineRun(2, "and here.", 72, 132, 100, 12, 2),
	}

	paras := NewParagraphDetector().Detect(runs)
	if len(paras) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(paras))
	}
}

func TestParagraphDetector_Splits(t *testing.T) {
	tests := []struct {
		name string
		next Run
	}{
		{"large gap", makeLineRun(1, "far below", 72, 160, 100, 12, 1)},
		{"different font size", makeLineRun(1, "Heading", 72, 116, 100, 18, 1)},
		{"misaligned", makeLineRun(1, "right column", 300, 116, 100, 12, 1)},
		{"line above", makeLineRun(1, "above", 72, 80, 100, 12, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := []Run{makeLineRun(0, "first", 72, 100, 100, 12, 0), tt.next}
			if paras := NewParagraphDetector().Detect(runs); len(paras) != 2 {
				t.Errorf("expected 2 paragraphs, got %d", len(paras))
			}
		})
	}
}

func TestParagraphDetector_ColorMismatch(t *testing.T) {
	second := makeLineRun(1, "red", 72, 116, 100, 12, 1)
	second.Color = "#f00"
	runs := []Run{makeLineRun(0, "black", 72, 100, 100, 12, 0), second}

	if paras := NewParagraphDetector().Detect(runs); len(paras) != 2 {
		t.Errorf("expected 2 paragraphs, got %d", len(paras))
	}
}

func TestParagraphDetector_SkipsVerticalAndBoxless(t *testing.T) {
	vertical := makeLineRun(1, "縦", 72, 116, 12, 12, 1)
	vertical.Vertical = true
	boxless := makeLineRun(2, "??", 0, 0, 0, 12, 2)
	boxless.HasBox = false

	runs := []Run{makeLineRun(0, "first", 72, 100, 100, 12, 0), vertical, boxless}
	paras := NewParagraphDetector().Detect(runs)
	if len(paras) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paras))
	}
	if paras[1].Runs[0] != 1 {
		t.Errorf("second paragraph should hold the vertical run, got %v", paras[1].Runs)
	}
}

func TestShouldSplitByGap(t *testing.T) {
	g := DefaultGapGuardrails()
	tests := []struct {
		name   string
		sample GapSample
		want   bool
	}{
		{"tiny gap does not split", GapSample{
			MaxGap: 8, LineWidth: 400, BaseFontSize: 12,
			SegmentCharCounts: []int{20, 20}, SegmentWidths: []float64{180, 190},
		}, false},
		{"wide gap splits", GapSample{
			MaxGap: 100, LineWidth: 400, BaseFontSize: 12,
			SegmentCharCounts: []int{20, 20}, SegmentWidths: []float64{140, 160},
		}, true},
		{"short segment blocks split", GapSample{
			MaxGap: 100, LineWidth: 400, BaseFontSize: 12,
			SegmentCharCounts: []int{1, 20}, SegmentWidths: []float64{140, 160},
		}, false},
		{"narrow segment blocks split", GapSample{
			MaxGap: 100, LineWidth: 400, BaseFontSize: 12,
			SegmentCharCounts: []int{5, 20}, SegmentWidths: []float64{20, 160},
		}, false},
		{"gap small relative to line", GapSample{
			MaxGap: 80, LineWidth: 1000, BaseFontSize: 12,
			SegmentCharCounts: []int{50, 50}, SegmentWidths: []float64{450, 470},
		}, false},
		{"NaN gap", GapSample{MaxGap: math.NaN(), LineWidth: 400}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldSplitByGap(g, tt.sample); got != tt.want {
				t.Errorf("ShouldSplitByGap() = %v, want %v", got, tt.want)
			}
		})
	}
}
