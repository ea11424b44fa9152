package layout

import (
	"math"
	"strings"

	"github.com/tsawler/textlayer/model"
)

// Paragraph is a group of consecutive horizontal runs that read as one
// block of text: same font and color, regular line gaps, aligned left edges.
type Paragraph struct {
	// Text is the run texts joined with newlines
	Text string

	// Runs are the indices of the grouped runs
	Runs []int

	// MemberIndices are the glyph indices of every grouped run, in order
	MemberIndices []int

	// Bounds is the union of the run boxes
	Bounds model.Rect

	// LineHeight is the average gap between line tops, 0 for one line
	LineHeight float64

	// LineCount is the number of grouped runs
	LineCount int
}

// ParagraphDetector groups runs into paragraphs. It expects runs built with
// y-down viewport rectangles (see ViewportRects), where a following line has
// a larger Top.
type ParagraphDetector struct {
	config ParagraphConfig
}

// NewParagraphDetector creates a new paragraph detector with default configuration
func NewParagraphDetector() *ParagraphDetector {
	return &ParagraphDetector{config: DefaultParagraphConfig()}
}

// NewParagraphDetectorWithConfig creates a paragraph detector with custom configuration
func NewParagraphDetectorWithConfig(config ParagraphConfig) *ParagraphDetector {
	return &ParagraphDetector{config: config}
}

// paragraphState accumulates one paragraph while scanning runs
type paragraphState struct {
	para      Paragraph
	seen      map[int]bool
	fontSize  float64
	fontName  string
	color     string
	vertical  bool
	alignLeft float64
	lastTop   float64
	gapTotal  float64
	gapCount  int
}

// Detect groups runs into paragraphs. Runs without a box are skipped.
func (d *ParagraphDetector) Detect(runs []Run) []Paragraph {
	var paragraphs []Paragraph
	var current *paragraphState

	for i := range runs {
		run := &runs[i]
		if !run.HasBox {
			continue
		}

		if current == nil {
			current = d.start(run)
			continue
		}

		gap, alignLeft, ok := d.canJoin(current, run)
		if !ok {
			paragraphs = append(paragraphs, d.finish(current))
			current = d.start(run)
			continue
		}
		d.appendLine(current, run, gap, alignLeft)
	}

	if current != nil {
		paragraphs = append(paragraphs, d.finish(current))
	}
	return paragraphs
}

func (d *ParagraphDetector) start(run *Run) *paragraphState {
	st := &paragraphState{
		para: Paragraph{
			Text:      run.Text,
			Runs:      []int{run.Index},
			Bounds:    run.BoundingBox,
			LineCount: 1,
		},
		seen:      make(map[int]bool),
		fontSize:  run.FontSize,
		fontName:  run.FontName,
		color:     run.Color,
		vertical:  run.Vertical,
		alignLeft: run.BoundingBox.Left,
		lastTop:   run.BoundingBox.Top,
	}
	st.addMembers(run.MemberIndices)
	return st
}

func (st *paragraphState) addMembers(indices []int) {
	for _, idx := range indices {
		if st.seen[idx] {
			continue
		}
		st.seen[idx] = true
		st.para.MemberIndices = append(st.para.MemberIndices, idx)
	}
}

func (d *ParagraphDetector) appendLine(st *paragraphState, run *Run, gap, alignLeft float64) {
	st.para.Text += "\n" + run.Text
	st.para.Runs = append(st.para.Runs, run.Index)
	st.addMembers(run.MemberIndices)
	st.para.Bounds = st.para.Bounds.Union(run.BoundingBox)
	st.para.LineCount++
	st.gapTotal += gap
	st.gapCount++
	st.lastTop = run.BoundingBox.Top
	st.alignLeft = alignLeft
}

func (d *ParagraphDetector) finish(st *paragraphState) Paragraph {
	p := st.para
	if st.gapCount > 0 {
		p.LineHeight = st.gapTotal / float64(st.gapCount)
	}
	p.Text = strings.TrimRight(p.Text, "\n")
	return p
}

// canJoin decides whether run continues the paragraph. It returns the line
// gap and the left edge continuation lines must align with.
func (d *ParagraphDetector) canJoin(st *paragraphState, run *Run) (float64, float64, bool) {
	if st.vertical || run.Vertical {
		return 0, 0, false
	}

	gap := run.BoundingBox.Top - st.lastTop
	if math.IsNaN(gap) || math.IsInf(gap, 0) || gap <= 0 {
		return 0, 0, false
	}

	fontSize := st.fontSize
	if fontSize == 0 {
		fontSize = run.FontSize
	}
	if fontSize == 0 {
		return 0, 0, false
	}

	sameFont := st.fontName == run.FontName && math.Abs(st.fontSize-run.FontSize) <= d.config.FontSizeTolerance
	sameColor := st.color == "" || run.Color == "" || st.color == run.Color
	if !sameFont || !sameColor {
		return 0, 0, false
	}

	avgGap := 0.0
	if st.gapCount > 0 {
		avgGap = st.gapTotal / float64(st.gapCount)
	}
	maxGap := math.Max(fontSize*d.config.MaxGapFactor, avgGap*d.config.AverageGapFactor)
	if gap > maxGap {
		return 0, 0, false
	}

	left := run.BoundingBox.Left
	leftDiff := math.Abs(left - st.alignLeft)
	if leftDiff <= fontSize*d.config.AlignFactor {
		return gap, st.alignLeft, true
	}
	// The first line of a paragraph may be indented; the second line then
	// sets the alignment for the rest.
	if st.para.LineCount == 1 && leftDiff <= fontSize*d.config.IndentFactor {
		return gap, left, true
	}
	return 0, 0, false
}
