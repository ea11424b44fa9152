// Package hittest resolves which glyph indices a click or drag rectangle
// touches.
//
// The same intersection code serves two kinds of candidates: live text-layer
// nodes, measured on demand, and cached rectangles captured earlier. A
// [Strategy] supplies the per-kind accessors.
//
//	indices := hittest.IndicesInRect(hittest.Query[*dom.Node]{
//	    Rect:       &hittest.Selection{X: 5, Y: 5, Width: 20, Height: 10},
//	    Candidates: layer.Nodes(),
//	    Origin:     &origin,
//	    Strategy:   hittest.ElementStrategy[*dom.Node](),
//	})
package hittest
