package hittest

import (
	"github.com/tsawler/textlayer/ledger"
	"github.com/tsawler/textlayer/model"
)

// Element is a live text-layer node. Connected reports whether the node is
// still attached; BoundingRect returns its absolute viewport rectangle; Attr
// reads an attribute such as IndexAttr.
type Element interface {
	Connected() bool
	BoundingRect() (model.Rect, bool)
	Attr(name string) (string, bool)
}

// GlyphIndexer is implemented by candidates that carry their index as a
// field instead of an attribute
type GlyphIndexer interface {
	GlyphIndex() (int, bool)
}

// ElementStrategy tests live nodes through their own methods
func ElementStrategy[E Element]() Strategy[E] {
	return Strategy[E]{
		IsLive:  func(e E) bool { return e.Connected() },
		GetRect: func(e E) (model.Rect, bool) { return e.BoundingRect() },
		IndexOf: defaultIndexOf[E],
	}
}

// CachedRect is a pre-measured, container-relative candidate
type CachedRect struct {
	Index int
	Rect  model.Rect
}

// CachedStrategy tests CachedRect records. Cached rectangles are already
// relative, so pair it with a zero Origin.
func CachedStrategy() Strategy[CachedRect] {
	return Strategy[CachedRect]{
		IsLive:  func(CachedRect) bool { return true },
		GetRect: func(c CachedRect) (model.Rect, bool) { return c.Rect, true },
		IndexOf: func(c CachedRect) (any, bool) { return c.Index, true },
	}
}

// Cached snapshots the live candidates into container-relative records,
// so later queries can skip measuring the layer
func Cached[C any](candidates []C, origin model.Point, strategy Strategy[C]) []CachedRect {
	strategy = strategy.withDefaults()
	out := make([]CachedRect, 0, len(candidates))
	for _, c := range candidates {
		if !strategy.IsLive(c) {
			continue
		}
		r, ok := strategy.GetRect(c)
		if !ok {
			continue
		}
		raw, ok := strategy.IndexOf(c)
		if !ok {
			continue
		}
		idx, ok := ledger.ParseIndex(raw)
		if !ok {
			continue
		}
		out = append(out, CachedRect{Index: idx, Rect: r.Translate(-origin.X, -origin.Y)})
	}
	return out
}

func defaultIsLive[C any](c C) bool {
	switch v := any(c).(type) {
	case nil:
		return false
	case interface{ Connected() bool }:
		return v.Connected()
	}
	return true
}

func defaultGetRect[C any](c C) (model.Rect, bool) {
	if v, ok := any(c).(interface{ BoundingRect() (model.Rect, bool) }); ok {
		return v.BoundingRect()
	}
	if v, ok := any(c).(CachedRect); ok {
		return v.Rect, true
	}
	return model.Rect{}, false
}

// defaultIndexOf prefers the index attribute, then a direct field
func defaultIndexOf[C any](c C) (any, bool) {
	if v, ok := any(c).(interface{ Attr(string) (string, bool) }); ok {
		if s, ok := v.Attr(IndexAttr); ok {
			return s, true
		}
	}
	if v, ok := any(c).(GlyphIndexer); ok {
		return v.GlyphIndex()
	}
	if v, ok := any(c).(CachedRect); ok {
		return v.Index, true
	}
	return nil, false
}
