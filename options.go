package textlayer

import (
	"github.com/tsawler/textlayer/layout"
	"github.com/tsawler/textlayer/model"
)

// ExtractOptions holds configuration for run extraction.
type ExtractOptions struct {
	// Segmentation
	runConfig  layout.RunConfig
	splitGaps  bool
	guardrails layout.GapGuardrails

	// Paragraph grouping
	paraConfig layout.ParagraphConfig

	// Geometry; nil means page space
	viewport *model.Matrix
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		runConfig:  layout.DefaultRunConfig(),
		splitGaps:  false,
		guardrails: layout.DefaultGapGuardrails(),
		paraConfig: layout.DefaultParagraphConfig(),
		viewport:   nil,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	if o.viewport != nil {
		m := *o.viewport
		newOpts.viewport = &m
	}

	return newOpts
}

// rectFunc returns the glyph geometry the options describe
func (o ExtractOptions) rectFunc() layout.RectFunc {
	if o.viewport == nil {
		return layout.PageRects
	}
	return layout.ViewportRects(*o.viewport)
}

// downViewport returns a y-down viewport for paragraph grouping: the
// configured one, or page space mirrored about the x axis
func (o ExtractOptions) downViewport() model.Matrix {
	if o.viewport != nil {
		return *o.viewport
	}
	return model.Scale(1, -1)
}
