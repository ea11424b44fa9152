package dom

import (
	"github.com/tsawler/textlayer/hittest"
	"github.com/tsawler/textlayer/layout"
	"github.com/tsawler/textlayer/model"
)

// Layer is a page's text layer: one node per glyph index, positioned in
// absolute viewport coordinates. Origin is the absolute top-left corner of
// the layer's container.
type Layer struct {
	origin  model.Point
	nodes   []*Node
	byIndex map[int]*Node
}

// NewLayer creates an empty layer whose container sits at origin
func NewLayer(origin model.Point) *Layer {
	return &Layer{
		origin:  origin,
		byIndex: make(map[int]*Node),
	}
}

// Build creates a layer for a page's glyph items. viewport maps page space
// into container-relative viewport space (see model.FlipY). Items without
// usable geometry still get a node, but it has no rectangle.
func Build(items []model.GlyphItem, viewport model.Matrix, origin model.Point) *Layer {
	layer := NewLayer(origin)
	rectOf := layout.ViewportRects(viewport)
	for i := range items {
		item := &items[i]
		n := NewNode(i, item.Text, model.Rect{})
		if r, ok := rectOf(i, item); ok && r.IsFinite() {
			n.SetRect(r.Translate(origin.X, origin.Y))
		} else {
			n.ClearRect()
		}
		if item.FontName != "" {
			n.SetAttr(AttrFontName, item.FontName)
		}
		if item.Color != "" {
			n.SetAttr(AttrFontColor, item.Color)
		}
		layer.Add(n)
	}
	return layer
}

// Add appends a node. A node with an index already present replaces the
// lookup entry but both stay in document order.
func (l *Layer) Add(n *Node) {
	l.nodes = append(l.nodes, n)
	l.byIndex[n.Index] = n
}

// Origin returns the container's absolute top-left corner
func (l *Layer) Origin() model.Point {
	return l.origin
}

// Nodes returns every node in document order, detached ones included
func (l *Layer) Nodes() []*Node {
	return l.nodes
}

// Node returns the node for glyph index idx
func (l *Layer) Node(idx int) (*Node, bool) {
	n, ok := l.byIndex[idx]
	return n, ok
}

// Connected returns the attached nodes in document order
func (l *Layer) Connected() []*Node {
	out := make([]*Node, 0, len(l.nodes))
	for _, n := range l.nodes {
		if n.Connected() {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of nodes, detached ones included
func (l *Layer) Len() int {
	return len(l.nodes)
}

// LiveStrategy treats a node as live while it is attached and not hidden
// behind an overlay
func LiveStrategy() hittest.Strategy[*Node] {
	return hittest.Strategy[*Node]{
		IsLive: func(n *Node) bool { return n.Connected() && !n.Hidden() },
	}
}

// IndicesInRect hit-tests the visible nodes against a container-relative
// selection
func (l *Layer) IndicesInRect(sel hittest.Selection) []int {
	origin := l.origin
	return hittest.IndicesInRect(hittest.Query[*Node]{
		Rect:       &sel,
		Candidates: l.nodes,
		Origin:     &origin,
		Strategy:   LiveStrategy(),
	})
}

// CachedRects snapshots the visible nodes as container-relative rectangles
func (l *Layer) CachedRects() []hittest.CachedRect {
	return hittest.Cached(l.nodes, l.origin, LiveStrategy())
}

// Geometry snapshots every attached node as a container-relative rectangle,
// hidden ones included
func (l *Layer) Geometry() []hittest.CachedRect {
	return hittest.Cached(l.nodes, l.origin, hittest.ElementStrategy[*Node]())
}

// Clone returns a deep copy of the layer. Changes to either copy's nodes
// do not affect the other.
func (l *Layer) Clone() *Layer {
	out := NewLayer(l.origin)
	copies := make(map[*Node]*Node, len(l.nodes))
	out.nodes = make([]*Node, len(l.nodes))
	for i, n := range l.nodes {
		c := n.clone()
		copies[n] = c
		out.nodes[i] = c
	}
	for idx, n := range l.byIndex {
		out.byIndex[idx] = copies[n]
	}
	return out
}

// SetHidden hides or shows the nodes for the given glyph indices. Unknown
// indices are ignored.
func (l *Layer) SetHidden(indices []int, hidden bool) {
	for _, idx := range indices {
		if n, ok := l.byIndex[idx]; ok {
			n.SetHidden(hidden)
		}
	}
}
