// integration.go connects the fluent API to the text layer and the page
// controller
package textlayer

import (
	"github.com/tsawler/textlayer/cover"
	"github.com/tsawler/textlayer/dom"
	"github.com/tsawler/textlayer/model"
	"github.com/tsawler/textlayer/page"
)

// Layer builds the text layer for page pageNum (numbered from 1) and merges
// each run's nodes into one. The layer container sits at the viewport
// origin. Without a configured viewport the page is mirrored so that its
// highest glyph touches the top edge.
//
// Example:
//
//	layer, _, err := textlayer.FromGlyphs(items).FlipY(792, 1).Layer(1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = layer.Render(os.Stdout)
func (e *Extractor) Layer(pageNum int) (*dom.Layer, []Warning, error) {
	runs, warnings, err := e.Runs()
	if err != nil {
		return nil, nil, err
	}

	layer := dom.Build(e.items, e.fitViewport(), model.Point{})
	dom.MergeRuns(layer, runs, pageNum)
	return layer, warnings, nil
}

// Controller creates a page controller configured like the Extractor and
// completes a first render with its items. Further renders go through the
// controller's BeginRender/CompleteRender.
//
// Example:
//
//	ctrl := textlayer.Must(textlayer.FromGlyphs(items).FlipY(792, 1).Controller(1))
//	overlay, err := ctrl.ConvertAt(model.Point{X: 120, Y: 96})
func (e *Extractor) Controller(pageNum int, opts ...page.Option) (*page.Controller, error) {
	if e.err != nil {
		return nil, e.err
	}

	base := []page.Option{
		page.WithRunConfig(e.options.runConfig),
		page.WithParagraphConfig(e.options.paraConfig),
	}
	if e.options.splitGaps {
		base = append(base, page.WithSplitWideGaps(e.options.guardrails))
	}
	ctrl := page.New(pageNum, append(base, opts...)...)

	viewport := e.fitViewport()
	size := viewportSize(e.items, viewport)
	err := ctrl.CompleteRender(ctrl.BeginRender(), page.Render{
		Items:        e.items,
		Viewport:     viewport,
		ViewportSize: size,
		PageSize:     size,
	})
	if err != nil {
		return nil, err
	}
	return ctrl, nil
}

// fitViewport returns the configured viewport, or a unit-scale y-down one
// whose top edge is the highest glyph on the page
func (e *Extractor) fitViewport() model.Matrix {
	if e.options.viewport != nil {
		return *e.options.viewport
	}
	top := 0.0
	for i := range e.items {
		r, ok := model.GlyphRect(&e.items[i])
		if ok && r.IsFinite() {
			top = max(top, r.Bottom)
		}
	}
	return model.FlipY(top, 1)
}

// viewportSize estimates the rendered page size from the glyph extents.
// Without a real page size, pixels and points are taken as equal.
func viewportSize(items []model.GlyphItem, viewport model.Matrix) cover.Size {
	var size cover.Size
	for i := range items {
		r, ok := model.GlyphRect(&items[i])
		if !ok || !r.IsFinite() {
			continue
		}
		p := viewport.Transform(model.Point{X: r.Right, Y: r.Bottom})
		q := viewport.Transform(model.Point{X: r.Left, Y: r.Top})
		size.Width = max(size.Width, p.X, q.X)
		size.Height = max(size.Height, p.Y, q.Y)
	}
	return size
}
