// Package dom models a page's text layer: the interactive elements a viewer
// lays over the rendered page, one per glyph item.
//
// A [Layer] is built from glyph items ([Build]) or read from HTML
// ([ParseHTML]) and written back with [Layer.Render]. [MergeRun] folds the
// nodes of a run into a single clickable node. [Node] satisfies
// hittest.Element, so layers can be hit-tested live or through
// [Layer.CachedRects].
package dom
