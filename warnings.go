package textlayer

import (
	"fmt"
	"strings"
)

// WarningCode classifies a non-fatal problem found in the input
type WarningCode int

const (
	// WarningMissingTransform marks an item whose transform has fewer than
	// six components. It is treated as horizontal with rotation 0 and has
	// no rectangle.
	WarningMissingTransform WarningCode = iota

	// WarningNonFiniteGeometry marks an item with a NaN or infinite
	// transform component, width or height
	WarningNonFiniteGeometry

	// WarningNoText marks input in which no item carries visible text
	WarningNoText
)

// String returns a string representation of the warning code
func (c WarningCode) String() string {
	switch c {
	case WarningMissingTransform:
		return "missing transform"
	case WarningNonFiniteGeometry:
		return "non-finite geometry"
	case WarningNoText:
		return "no text"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue: extraction succeeded but the results may be
// imperfect
type Warning struct {
	Code WarningCode

	// Index is the glyph index concerned, or -1 for the whole input
	Index int

	Message string
}

// String formats the warning for display
func (w Warning) String() string {
	if w.Index < 0 {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("item %d: %s: %s", w.Index, w.Code, w.Message)
}

// FormatWarnings joins warnings into one line per warning
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
