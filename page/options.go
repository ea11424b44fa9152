package page

import (
	"log/slog"

	"github.com/tsawler/textlayer/cover"
	"github.com/tsawler/textlayer/internal/logging"
	"github.com/tsawler/textlayer/layout"
)

// Option configures a Controller
type Option func(*options)

type options struct {
	logger       *slog.Logger
	runConfig    layout.RunConfig
	paraConfig   layout.ParagraphConfig
	guardrails   *layout.GapGuardrails
	coverPadding float64
	ruleGap      float64
}

func defaultOptions() options {
	return options{
		logger:       logging.Get(),
		runConfig:    layout.DefaultRunConfig(),
		paraConfig:   layout.DefaultParagraphConfig(),
		coverPadding: cover.DefaultPadding,
		ruleGap:      cover.DefaultRuleGap,
	}
}

// WithLogger sets the controller's logger. By default the controller logs
// through the library-wide logger (see textlayer.SetLogger).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRunConfig sets the run segmentation thresholds
func WithRunConfig(config layout.RunConfig) Option {
	return func(o *options) {
		o.runConfig = config
	}
}

// WithParagraphConfig sets the paragraph grouping thresholds
func WithParagraphConfig(config layout.ParagraphConfig) Option {
	return func(o *options) {
		o.paraConfig = config
	}
}

// WithSplitWideGaps splits runs at wide internal gaps
func WithSplitWideGaps(guardrails layout.GapGuardrails) Option {
	return func(o *options) {
		o.guardrails = &guardrails
	}
}

// WithCoverPadding sets the padding, in viewport pixels, around cover boxes
func WithCoverPadding(padding float64) Option {
	return func(o *options) {
		o.coverPadding = padding
	}
}

// WithRuleGap sets the band, in viewport pixels, that cover rectangles leave
// around ruled lines
func WithRuleGap(gap float64) Option {
	return func(o *options) {
		o.ruleGap = gap
	}
}
