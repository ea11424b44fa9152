package dom

import (
	"fmt"
	"strconv"

	"github.com/tsawler/textlayer/layout"
	"github.com/tsawler/textlayer/model"
	"github.com/tsawler/textlayer/text"
)

// RunID builds the identifier of a run's merged node: page, run index and
// the node's position inside the run, joined by underscores
func RunID(page, run, position int) string {
	return fmt.Sprintf("%d_%d_%d", page, run, position)
}

// MergeRun folds a run's member nodes into one. The first member with
// non-blank text becomes the representative: later members' text is
// appended to it and they are detached, blank members before it are
// detached too. The representative is resized to the union of the member
// rectangles and tagged with the page and run attributes.
//
// It returns nil when no member node has text (every member is then
// detached) or when the layer has no node for any member.
func MergeRun(layer *Layer, run layout.Run, page int) *Node {
	var rep *Node
	position := 0
	var box model.Rect
	haveBox := false

	for pos, idx := range run.MemberIndices {
		n, ok := layer.Node(idx)
		if !ok || !n.Connected() {
			continue
		}
		if r, ok := n.BoundingRect(); ok {
			if haveBox {
				box = box.Union(r)
			} else {
				box = r
				haveBox = true
			}
		}

		if rep == nil {
			if text.IsBlank(n.Text) {
				n.Detach()
				continue
			}
			rep = n
			position = pos
			continue
		}
		rep.Text += n.Text
		n.Detach()
	}

	if rep == nil {
		return nil
	}
	if haveBox {
		rep.SetRect(box)
	}
	rep.SetAttr(AttrPage, strconv.Itoa(page))
	rep.SetAttr(AttrRunID, RunID(page, run.Index, position))
	rep.SetAttr(AttrParts, strconv.Itoa(run.Index))
	rep.SetAttr(AttrPosition, strconv.Itoa(position))
	return rep
}

// MergeRuns merges every run and returns the representative nodes, indexed
// like runs (nil where a run has no representative)
func MergeRuns(layer *Layer, runs []layout.Run, page int) []*Node {
	out := make([]*Node, len(runs))
	for i, run := range runs {
		out[i] = MergeRun(layer, run, page)
	}
	return out
}

// TagParagraphs rewrites the parts attribute of merged nodes so that it
// names the paragraph instead of the run
func TagParagraphs(merged []*Node, runs []layout.Run, paragraphs []layout.Paragraph) {
	byRun := make(map[int]*Node, len(runs))
	for i, n := range merged {
		if n != nil && i < len(runs) {
			byRun[runs[i].Index] = n
		}
	}
	for p, para := range paragraphs {
		for _, runIndex := range para.Runs {
			if n, ok := byRun[runIndex]; ok {
				n.SetAttr(AttrParts, strconv.Itoa(p))
			}
		}
	}
}
