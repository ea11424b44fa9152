package textlayer

import (
	"log/slog"

	"github.com/tsawler/textlayer/internal/logging"
)

// SetLogger configures the logger for textlayer and all its sub-packages.
// By default, textlayer produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior. Controllers created afterwards pick up the new logger.
//
// Log levels used by textlayer:
//   - [slog.LevelDebug]: render sessions, conversions, restores
//   - [slog.LevelWarn]: claims that no longer match the page's glyphs
//
// Example:
//
//	textlayer.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by textlayer.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Get()
}
