package textlayer

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tsawler/textlayer/layout"
	"github.com/tsawler/textlayer/model"
	"github.com/tsawler/textlayer/text"
)

// ErrInvalidConfig is returned when a configuration value is negative or
// not a finite number
var ErrInvalidConfig = errors.New("invalid configuration")

// Extractor provides a fluent interface for building runs and paragraphs
// from a page's glyph items. Each configuration method returns a new
// Extractor instance, making it safe for concurrent use and allowing
// method chaining.
type Extractor struct {
	// Source
	items []model.GlyphItem

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		items:   e.items,
		options: e.options.clone(),
		err:     e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithConfig replaces the run segmentation thresholds.
//
// Example:
//
//	config := layout.DefaultRunConfig()
//	config.BreakOnReadGap = true
//	runs, _, err := textlayer.FromGlyphs(items).WithConfig(config).Runs()
func (e *Extractor) WithConfig(config layout.RunConfig) *Extractor {
	newExt := e.clone()
	if err := validateRunConfig(config); err != nil && newExt.err == nil {
		newExt.err = err
	}
	newExt.options.runConfig = config
	return newExt
}

// WithParagraphConfig replaces the paragraph grouping thresholds.
func (e *Extractor) WithParagraphConfig(config layout.ParagraphConfig) *Extractor {
	newExt := e.clone()
	newExt.options.paraConfig = config
	return newExt
}

// SplitWideGaps splits horizontal runs at wide internal gaps (table rows,
// label/value pairs) using the default guardrails.
//
// Example:
//
//	runs, _, err := textlayer.FromGlyphs(items).SplitWideGaps().Runs()
func (e *Extractor) SplitWideGaps() *Extractor {
	return e.SplitWideGapsWithGuardrails(layout.DefaultGapGuardrails())
}

// SplitWideGapsWithGuardrails is SplitWideGaps with custom guardrails.
func (e *Extractor) SplitWideGapsWithGuardrails(guardrails layout.GapGuardrails) *Extractor {
	newExt := e.clone()
	newExt.options.splitGaps = true
	newExt.options.guardrails = guardrails
	return newExt
}

// Viewport measures glyph boxes in a viewport instead of page space. The
// matrix maps page space into the viewport.
func (e *Extractor) Viewport(m model.Matrix) *Extractor {
	newExt := e.clone()
	newExt.options.viewport = &m
	return newExt
}

// FlipY measures glyph boxes in the y-down viewport of a page rendered at
// scale.
//
// Example:
//
//	paras, _, err := textlayer.FromGlyphs(items).FlipY(792, 1.5).Paragraphs()
func (e *Extractor) FlipY(pageHeight, scale float64) *Extractor {
	return e.Viewport(model.FlipY(pageHeight, scale))
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Runs segments the glyph items into runs. Warnings flag items with
// malformed geometry; such items never cause an error.
//
// Example:
//
//	runs, warnings, err := textlayer.FromGlyphs(items).Runs()
//	for _, run := range runs {
//	    fmt.Println(run.Index, run.Text, run.MemberIndices)
//	}
func (e *Extractor) Runs() ([]layout.Run, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	warnings := scanItems(e.items)
	return e.segmenter().SegmentWithRects(e.items, e.options.rectFunc()), warnings, nil
}

// Text returns the text of every non-blank run, one run per line.
func (e *Extractor) Text() (string, []Warning, error) {
	runs, warnings, err := e.Runs()
	if err != nil {
		return "", nil, err
	}

	lines := make([]string, 0, len(runs))
	for _, run := range runs {
		if run.Text != "" {
			lines = append(lines, run.Text)
		}
	}
	return strings.Join(lines, "\n"), warnings, nil
}

// Paragraphs groups the runs into paragraphs. Paragraph grouping works in a
// y-down space: the configured viewport, or page space mirrored about the
// x axis when none is set.
func (e *Extractor) Paragraphs() ([]layout.Paragraph, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	warnings := scanItems(e.items)
	runs := e.segmenter().SegmentWithRects(e.items, layout.ViewportRects(e.options.downViewport()))
	paras := layout.NewParagraphDetectorWithConfig(e.options.paraConfig).Detect(runs)
	return paras, warnings, nil
}

func (e *Extractor) segmenter() *layout.Segmenter {
	s := layout.NewSegmenterWithConfig(e.options.runConfig)
	if e.options.splitGaps {
		s.SplitWideGaps(e.options.guardrails)
	}
	return s
}

// scanItems reports items whose geometry the segmenter has to work around
func scanItems(items []model.GlyphItem) []Warning {
	var warnings []Warning
	hasText := false
	for i := range items {
		item := &items[i]
		if !text.IsBlank(item.Text) {
			hasText = true
		}

		if len(item.Transform) < 6 {
			warnings = append(warnings, Warning{
				Code:    WarningMissingTransform,
				Index:   i,
				Message: fmt.Sprintf("transform has %d components", len(item.Transform)),
			})
			continue
		}
		if !finite(item.Width) || !finite(item.Height) || !finiteAll(item.Transform[:6]) {
			warnings = append(warnings, Warning{
				Code:    WarningNonFiniteGeometry,
				Index:   i,
				Message: "geometry contains NaN or Inf",
			})
		}
	}

	if len(items) > 0 && !hasText {
		warnings = append(warnings, Warning{
			Code:    WarningNoText,
			Index:   -1,
			Message: fmt.Sprintf("all %d items are blank", len(items)),
		})
	}
	return warnings
}

func validateRunConfig(c layout.RunConfig) error {
	values := []struct {
		name  string
		value float64
	}{
		{"RotationDriftDegrees", c.RotationDriftDegrees},
		{"AxisThresholdFactor", c.AxisThresholdFactor},
		{"MinAxisThreshold", c.MinAxisThreshold},
		{"DimensionDriftFactor", c.DimensionDriftFactor},
		{"MinDimensionDrift", c.MinDimensionDrift},
		{"SpacerGapFactor", c.SpacerGapFactor},
		{"MinSpacerGap", c.MinSpacerGap},
		{"ReadGapFactor", c.ReadGapFactor},
		{"MinReadGap", c.MinReadGap},
	}
	for _, v := range values {
		if !finite(v.value) || v.value < 0 {
			return fmt.Errorf("run config %s = %v: %w", v.name, v.value, ErrInvalidConfig)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteAll(values []float64) bool {
	for _, v := range values {
		if !finite(v) {
			return false
		}
	}
	return true
}
