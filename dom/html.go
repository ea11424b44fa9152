package dom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/textlayer/ledger"
	"github.com/tsawler/textlayer/model"
)

// ContainerClass marks the element holding a text layer
const ContainerClass = "textLayer"

// Container attributes carrying the layer origin
const (
	attrOriginLeft = "data-left"
	attrOriginTop  = "data-top"
	attrHidden     = "hidden"
)

// ParseHTML reads a text layer from HTML. The container is the first
// element with class "textLayer" (the whole document when there is none);
// its data-left and data-top attributes give the layer origin. Every element
// inside it with a data-idx attribute becomes a node, positioned by the
// left, top, width and height properties of its inline style, relative to
// the container. Elements with an unusable data-idx are skipped.
func ParseHTML(r io.Reader) (*Layer, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing text layer: %w", err)
	}

	container := findContainer(doc)
	if container == nil {
		container = doc
	}
	origin := model.Point{
		X: parseLength(getAttr(container, attrOriginLeft)),
		Y: parseLength(getAttr(container, attrOriginTop)),
	}

	layer := NewLayer(origin)
	collectNodes(container, layer)
	return layer, nil
}

func findContainer(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && hasClass(n, ContainerClass) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findContainer(c); found != nil {
			return found
		}
	}
	return nil
}

func collectNodes(n *html.Node, layer *Layer) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		raw, ok := lookupAttr(c, AttrIndex)
		if !ok {
			collectNodes(c, layer)
			continue
		}
		idx, ok := ledger.ParseIndex(raw)
		if !ok {
			continue
		}

		node := NewNode(idx, textContent(c), model.Rect{})
		style := parseStyle(getAttr(c, "style"))
		left, hasLeft := style["left"]
		top, hasTop := style["top"]
		width, hasWidth := style["width"]
		height, hasHeight := style["height"]
		if hasLeft && hasTop && hasWidth && hasHeight {
			node.SetRect(model.RectFromXYWH(left+layer.origin.X, top+layer.origin.Y, width, height))
		} else {
			node.ClearRect()
		}

		for _, a := range c.Attr {
			switch a.Key {
			case "style", AttrIndex:
			case attrHidden:
				node.SetHidden(true)
			default:
				node.SetAttr(a.Key, a.Val)
			}
		}
		layer.Add(node)
	}
}

// Render writes the layer's connected nodes as HTML, in the form ParseHTML
// reads back
func (l *Layer) Render(w io.Writer) error {
	container := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr: []html.Attribute{
			{Key: "class", Val: ContainerClass},
			{Key: attrOriginLeft, Val: formatLength(l.origin.X)},
			{Key: attrOriginTop, Val: formatLength(l.origin.Y)},
		},
	}

	for _, n := range l.nodes {
		if !n.Connected() {
			continue
		}
		span := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Span,
			Data:     "span",
		}
		span.Attr = append(span.Attr, html.Attribute{Key: AttrIndex, Val: strconv.Itoa(n.Index)})
		for _, name := range n.AttrNames() {
			if name == AttrIndex {
				continue
			}
			span.Attr = append(span.Attr, html.Attribute{Key: name, Val: n.attrs[name]})
		}
		if r, ok := n.BoundingRect(); ok {
			span.Attr = append(span.Attr, html.Attribute{Key: "style", Val: formatStyle(r.Translate(-l.origin.X, -l.origin.Y))})
		}
		if n.Hidden() {
			span.Attr = append(span.Attr, html.Attribute{Key: attrHidden})
		}
		span.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
		container.AppendChild(span)
	}

	if err := html.Render(w, container); err != nil {
		return fmt.Errorf("rendering text layer: %w", err)
	}
	return nil
}

func formatStyle(r model.Rect) string {
	return fmt.Sprintf("left: %spx; top: %spx; width: %spx; height: %spx",
		formatLength(r.Left), formatLength(r.Top), formatLength(r.Width()), formatLength(r.Height()))
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseStyle extracts the numeric pixel properties of an inline style
func parseStyle(style string) map[string]float64 {
	props := make(map[string]float64)
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if v, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64); err == nil {
			props[name] = v
		}
	}
	return props
}

func parseLength(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	if err != nil {
		return 0
	}
	return v
}

// textContent returns the concatenated text of a node and its descendants
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// getAttr returns the value of an attribute, or empty string if not found
func getAttr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
