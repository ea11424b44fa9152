//go:build !ocr

package textlayer

import (
	"errors"
	"testing"

	"github.com/tsawler/textlayer/ocr"
)

func TestFromScanWithoutOCR(t *testing.T) {
	ext := FromScan([]byte{0x89, 'P', 'N', 'G'}, ocr.DefaultGlyphOptions())

	if _, _, err := ext.Text(); !errors.Is(err, ocr.ErrOCRNotEnabled) {
		t.Errorf("Text() error = %v, want ErrOCRNotEnabled", err)
	}
	if _, err := ext.Controller(1); !errors.Is(err, ocr.ErrOCRNotEnabled) {
		t.Errorf("Controller() error = %v, want ErrOCRNotEnabled", err)
	}
	// Configuration after a failed scan keeps the first error
	if _, _, err := ext.SplitWideGaps().Runs(); !errors.Is(err, ocr.ErrOCRNotEnabled) {
		t.Errorf("Runs() error = %v, want ErrOCRNotEnabled", err)
	}
}
