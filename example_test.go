package textlayer_test

import (
	"fmt"
	"log"
	"os"

	"github.com/tsawler/textlayer"
	"github.com/tsawler/textlayer/hittest"
	"github.com/tsawler/textlayer/layout"
	"github.com/tsawler/textlayer/model"
	"github.com/tsawler/textlayer/ocr"
	"github.com/tsawler/textlayer/page"
)

func item(s string, x, y, w float64) model.GlyphItem {
	return model.GlyphItem{
		Text:      s,
		Transform: []float64{1, 0, 0, 1, x, y},
		Width:     w,
		Height:    12,
		FontName:  "g_d0_f1",
	}
}

func sampleItems() []model.GlyphItem {
	return []model.GlyphItem{
		item("Invoice ", 72, 720, 48),
		item("#1024", 120, 720, 34),
		item("Total ", 72, 700, 36),
		item("due", 108, 700, 21),
	}
}

func Example_extractText() {
	text, warnings, err := textlayer.FromGlyphs(sampleItems()).Text()
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range warnings {
		fmt.Println("Warning:", w.Message)
	}
	fmt.Println(text)
	// Output:
	// Invoice #1024
	// Total due
}

func Example_runs() {
	runs := textlayer.MustText(textlayer.FromGlyphs(sampleItems()).Runs())
	for _, run := range runs {
		fmt.Println(run.Index, run.MemberIndices, run.Text)
	}
	// Output:
	// 0 [0 1] Invoice #1024
	// 1 [2 3] Total due
}

func Example_withOptions() {
	config := layout.DefaultRunConfig()
	config.BreakOnReadGap = true

	paras, _, err := textlayer.FromGlyphs(sampleItems()).
		WithConfig(config).
		SplitWideGaps().
		FlipY(792, 1.5).
		Paragraphs()
	_ = paras
	_ = err
}

func Example_editing() {
	ctrl := textlayer.Must(textlayer.FromGlyphs(sampleItems()).
		FlipY(792, 1).
		Controller(1, page.WithCoverPadding(1)))

	// Click on "#1024", then drag over the second line
	overlay, err := ctrl.ConvertAt(model.Point{X: 130, Y: 66})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(overlay.ID, overlay.Text)

	erased, err := ctrl.Erase(hittest.Selection{X: 70, Y: 80, Width: 60, Height: 14})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(erased.ID, erased.Indices)
	fmt.Println(ctrl.HiddenIndices())

	// Undo the conversion
	if _, err := ctrl.DeleteOverlay(overlay.ID); err != nil {
		log.Fatal(err)
	}
	fmt.Println(ctrl.HiddenIndices())
	// Output:
	// 1_0_0 Invoice #1024
	// 1_erase_1 [2 3]
	// [0 1 2 3]
	// [2 3]
}

func Example_renderLayer() {
	layer, _, err := textlayer.FromGlyphs(sampleItems()).FlipY(792, 1).Layer(1)
	if err != nil {
		log.Fatal(err)
	}
	if err := layer.Render(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func Example_scan() {
	// Requires the "ocr" build tag and Tesseract
	png, err := os.ReadFile("scan.png")
	if err != nil {
		return
	}
	text, _, err := textlayer.FromScan(png, ocr.DefaultGlyphOptions()).Text()
	_ = text
	_ = err
}
