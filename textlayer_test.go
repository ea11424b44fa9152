package textlayer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/textlayer/hittest"
	"github.com/tsawler/textlayer/layout"
	"github.com/tsawler/textlayer/model"
	"github.com/tsawler/textlayer/page"
)

func glyph(s string, x, y, w float64, eol bool) model.GlyphItem {
	return model.GlyphItem{
		Text:      s,
		Transform: []float64{1, 0, 0, 1, x, y},
		Width:     w,
		Height:    12,
		Color:     "#000000",
		FontName:  "g_d0_f1",
		HasEOL:    eol,
	}
}

func twoLines() []model.GlyphItem {
	return []model.GlyphItem{
		glyph("Hello ", 50, 700, 40, false),
		glyph("world", 90, 700, 35, true),
		glyph("Second ", 50, 680, 50, false),
		glyph("line", 100, 680, 30, false),
	}
}

func runTexts(runs []layout.Run) []string {
	texts := make([]string, 0, len(runs))
	for _, r := range runs {
		texts = append(texts, r.Text)
	}
	return texts
}

func TestRuns(t *testing.T) {
	runs, warnings, err := FromGlyphs(twoLines()).Runs()
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %s", FormatWarnings(warnings))
	}

	if diff := cmp.Diff([]string{"Hello world", "Second line"}, runTexts(runs)); diff != "" {
		t.Errorf("run texts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1}, runs[0].MemberIndices); diff != "" {
		t.Errorf("first run members mismatch (-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	items := append(twoLines(), glyph("  ", 50, 600, 10, false))

	text, _, err := FromGlyphs(items).Text()
	if err != nil {
		t.Fatalf("Text() failed: %v", err)
	}
	if text != "Hello world\nSecond line" {
		t.Errorf("Text() = %q, want %q", text, "Hello world\nSecond line")
	}
}

func TestViewportDoesNotChangeRuns(t *testing.T) {
	page, _, err := FromGlyphs(twoLines()).Text()
	if err != nil {
		t.Fatalf("Text() failed: %v", err)
	}
	viewport, _, err := FromGlyphs(twoLines()).FlipY(800, 1.5).Text()
	if err != nil {
		t.Fatalf("Text() with viewport failed: %v", err)
	}
	if page != viewport {
		t.Errorf("viewport text %q differs from page text %q", viewport, page)
	}
}

func TestParagraphs(t *testing.T) {
	paras, _, err := FromGlyphs(twoLines()).Paragraphs()
	if err != nil {
		t.Fatalf("Paragraphs() failed: %v", err)
	}
	if len(paras) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paras))
	}

	p := paras[0]
	if p.Text != "Hello world\nSecond line" {
		t.Errorf("paragraph text = %q", p.Text)
	}
	if diff := cmp.Diff([]int{0, 1}, p.Runs); diff != "" {
		t.Errorf("paragraph runs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, p.MemberIndices); diff != "" {
		t.Errorf("paragraph members mismatch (-want +got):\n%s", diff)
	}
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		name  string
		items []model.GlyphItem
		want  []WarningCode
	}{
		{
			name:  "clean",
			items: twoLines(),
		},
		{
			name: "short transform",
			items: []model.GlyphItem{
				glyph("a", 0, 0, 5, false),
				{Text: "b", Transform: []float64{1, 0, 0}},
			},
			want: []WarningCode{WarningMissingTransform},
		},
		{
			name: "non-finite width",
			items: []model.GlyphItem{
				{Text: "a", Transform: []float64{1, 0, 0, 1, 0, 0}, Width: math.Inf(1), Height: 10},
			},
			want: []WarningCode{WarningNonFiniteGeometry},
		},
		{
			name:  "all blank",
			items: []model.GlyphItem{glyph(" ", 0, 0, 3, false), glyph("\t", 5, 0, 3, false)},
			want:  []WarningCode{WarningNoText},
		},
		{
			name: "empty page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, warnings, err := FromGlyphs(tt.items).Runs()
			if err != nil {
				t.Fatalf("Runs() failed: %v", err)
			}
			var got []WarningCode
			for _, w := range warnings {
				got = append(got, w.Code)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("warning codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Code: WarningMissingTransform, Index: 3, Message: "transform has 2 components"},
		{Code: WarningNoText, Index: -1, Message: "all 2 items are blank"},
	}
	got := FormatWarnings(warnings)
	if lines := strings.Split(got, "\n"); len(lines) != 2 {
		t.Errorf("FormatWarnings() produced %d lines, want 2: %q", len(lines), got)
	}
	if FormatWarnings(nil) != "" {
		t.Error("FormatWarnings(nil) should be empty")
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*layout.RunConfig)
	}{
		{"negative factor", func(c *layout.RunConfig) { c.AxisThresholdFactor = -1 }},
		{"NaN drift", func(c *layout.RunConfig) { c.RotationDriftDegrees = math.NaN() }},
		{"infinite gap", func(c *layout.RunConfig) { c.MinReadGap = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := layout.DefaultRunConfig()
			tt.mutate(&config)

			ext := FromGlyphs(twoLines()).WithConfig(config)
			if _, _, err := ext.Runs(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Runs() error = %v, want ErrInvalidConfig", err)
			}
			if _, err := ext.Controller(1); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Controller() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestChainImmutability(t *testing.T) {
	base := FromGlyphs(twoLines())
	flipped := base.FlipY(800, 2)
	split := base.SplitWideGaps()

	if base.options.viewport != nil {
		t.Error("FlipY modified the base extractor")
	}
	if base.options.splitGaps {
		t.Error("SplitWideGaps modified the base extractor")
	}
	if flipped.options.splitGaps {
		t.Error("sibling chains share options")
	}

	config := layout.DefaultRunConfig()
	config.AxisThresholdFactor = -1
	_ = base.WithConfig(config)
	if _, _, err := base.Runs(); err != nil {
		t.Errorf("invalid config on a derived extractor leaked into the base: %v", err)
	}
	if split.options.viewport != nil {
		t.Error("sibling chains share the viewport")
	}
}

func TestMust(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		if got := Must(42, nil); got != 42 {
			t.Errorf("Must() = %d, want 42", got)
		}
	})

	t.Run("panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Must() did not panic")
			}
		}()
		Must(0, errors.New("boom"))
	})
}

func TestMustText(t *testing.T) {
	runs := MustText(FromGlyphs(twoLines()).Runs())
	if len(runs) != 2 {
		t.Errorf("MustText() returned %d runs, want 2", len(runs))
	}

	defer func() {
		if recover() == nil {
			t.Error("MustText() did not panic on invalid config")
		}
	}()
	config := layout.DefaultRunConfig()
	config.MinAxisThreshold = -1
	MustText(FromGlyphs(twoLines()).WithConfig(config).Runs())
}

func TestLayer(t *testing.T) {
	layer, _, err := FromGlyphs(twoLines()).FlipY(800, 1).Layer(1)
	if err != nil {
		t.Fatalf("Layer() failed: %v", err)
	}

	connected := layer.Connected()
	if len(connected) != 2 {
		t.Fatalf("got %d connected nodes, want 2 merged runs", len(connected))
	}
	if connected[0].Text != "Hello world" {
		t.Errorf("first merged node text = %q", connected[0].Text)
	}
	if id, _ := connected[1].Attr("data-id"); id != "1_1_0" {
		t.Errorf("second merged node id = %q, want 1_1_0", id)
	}

	var buf bytes.Buffer
	if err := layer.Render(&buf); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Second line") {
		t.Errorf("rendered layer missing merged text: %s", buf.String())
	}
}

func TestController(t *testing.T) {
	ctrl, err := FromGlyphs(twoLines()).FlipY(800, 1).Controller(1)
	if err != nil {
		t.Fatalf("Controller() failed: %v", err)
	}
	if diff := cmp.Diff([]string{"Hello world", "Second line"}, runTexts(ctrl.Runs())); diff != "" {
		t.Errorf("controller runs mismatch (-want +got):\n%s", diff)
	}

	// "world" sits at x 90..125, y 88..100 in the viewport
	overlay, err := ctrl.ConvertAt(model.Point{X: 100, Y: 94})
	if err != nil {
		t.Fatalf("ConvertAt() failed: %v", err)
	}
	if overlay.Text != "Hello world" {
		t.Errorf("converted %q, want %q", overlay.Text, "Hello world")
	}
	if diff := cmp.Diff([]int{0, 1}, ctrl.HiddenIndices()); diff != "" {
		t.Errorf("hidden indices mismatch (-want +got):\n%s", diff)
	}
}

func TestControllerFittedViewport(t *testing.T) {
	ctrl := Must(FromGlyphs(twoLines()).Controller(1))

	// Without a viewport the top of the first line is at y 0
	if _, err := ctrl.Erase(hittest.Selection{X: 45, Y: -1, Width: 100, Height: 6}); err != nil {
		t.Fatalf("Erase() failed: %v", err)
	}
	if diff := cmp.Diff([]int{0, 1}, ctrl.HiddenIndices()); diff != "" {
		t.Errorf("hidden indices mismatch (-want +got):\n%s", diff)
	}
}

func TestControllerOptions(t *testing.T) {
	var got []page.EventKind
	ctrl := Must(FromGlyphs(twoLines()).FlipY(800, 1).Controller(1, page.WithCoverPadding(0)))
	unsubscribe := ctrl.Events().Subscribe(func(ev page.Event) {
		got = append(got, ev.Kind)
	})
	defer unsubscribe()

	overlay := Must(ctrl.ConvertRun(1))
	if overlay.Cover.OffsetX != 0 || overlay.Cover.OffsetY != 0 {
		t.Errorf("cover offsets = (%v, %v), want zero padding", overlay.Cover.OffsetX, overlay.Cover.OffsetY)
	}
	if _, err := ctrl.DeleteOverlay(overlay.ID); err != nil {
		t.Fatalf("DeleteOverlay() failed: %v", err)
	}

	if diff := cmp.Diff([]page.EventKind{page.EventConverted, page.EventRestored}, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if Logger() == nil {
		t.Fatal("Logger() returned nil")
	}

	ctrl := Must(FromGlyphs(twoLines()).FlipY(800, 1).Controller(1))
	if _, err := ctrl.ConvertRun(0); err != nil {
		t.Fatalf("ConvertRun() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "page=1") {
		t.Errorf("log output missing page attribute: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Handler().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard records")
	}
}
