package dom

import (
	"sort"
	"strconv"

	"github.com/tsawler/textlayer/hittest"
	"github.com/tsawler/textlayer/model"
)

// Attribute names written on text-layer nodes
const (
	AttrIndex     = hittest.IndexAttr // glyph index
	AttrPage      = "data-p"          // page number
	AttrRunID     = "data-id"         // page_run_position
	AttrParts     = "data-parts"      // run (or paragraph) index
	AttrPosition  = "data-l"          // position of the node within its run
	AttrFontName  = "data-fontname"
	AttrFontColor = "data-fontcolor"
)

// Node is one interactive element of a text layer. It starts out covering a
// single glyph item; merging a run folds the members into the first
// non-blank node and detaches the rest.
type Node struct {
	// Index is the glyph index the node was created for
	Index int

	// Text is the node's text content
	Text string

	rect     model.Rect
	hasRect  bool
	attrs    map[string]string
	detached bool
	hidden   bool
}

// NewNode creates an attached node for glyph index idx. rect is the node's
// absolute viewport rectangle.
func NewNode(idx int, text string, rect model.Rect) *Node {
	n := &Node{
		Index:   idx,
		Text:    text,
		rect:    rect,
		hasRect: true,
		attrs:   make(map[string]string),
	}
	n.attrs[AttrIndex] = strconv.Itoa(idx)
	return n
}

// Connected reports whether the node is still part of the layer. A nil node
// is never connected.
func (n *Node) Connected() bool {
	return n != nil && !n.detached
}

// BoundingRect returns the node's absolute viewport rectangle
func (n *Node) BoundingRect() (model.Rect, bool) {
	if n == nil || !n.hasRect {
		return model.Rect{}, false
	}
	return n.rect, true
}

// SetRect moves the node
func (n *Node) SetRect(r model.Rect) {
	n.rect = r
	n.hasRect = true
}

// ClearRect marks the node as having no geometry
func (n *Node) ClearRect() {
	n.rect = model.Rect{}
	n.hasRect = false
}

// Attr returns an attribute value
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr sets an attribute value
func (n *Node) SetAttr(name, value string) {
	n.attrs[name] = value
}

// RemoveAttr deletes an attribute
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// AttrNames returns the node's attribute names, sorted
func (n *Node) AttrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GlyphIndex returns the node's glyph index
func (n *Node) GlyphIndex() (int, bool) {
	if n == nil {
		return 0, false
	}
	return n.Index, true
}

// Detach removes the node from the layer. Detached nodes are skipped by
// hit-testing and rendering.
func (n *Node) Detach() {
	n.detached = true
}

// Hidden reports whether the node is hidden behind an edit overlay
func (n *Node) Hidden() bool {
	return n != nil && n.hidden
}

// SetHidden hides or shows the node
func (n *Node) SetHidden(hidden bool) {
	n.hidden = hidden
}

func (n *Node) clone() *Node {
	out := *n
	out.attrs = make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out.attrs[k] = v
	}
	return &out
}
