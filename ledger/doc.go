// Package ledger tracks which glyphs of a page are hidden behind edit
// overlays.
//
// When a run is converted into an editable overlay, its glyphs are
// "claimed" and must stay hidden. Claims are reference counted: overlapping
// overlays can claim the same glyph, and the glyph only reappears when the
// last claim is restored.
//
//	l := ledger.New()
//	accepted := l.Mark(ledger.Ints(run.MemberIndices), items)
//	// ... overlay deleted
//	released := l.Restore(ledger.Ints(accepted))
//
// Indices arrive from untrusted places (DOM attributes, history records), so
// every operation normalizes its input with [NormalizeIndices]: strings and
// numbers are accepted, duplicates and invalid values are dropped, nothing
// panics.
//
// Glyph arrays are rebuilt on every render. The ledger only stores integer
// indices, and [Ledger.CollectClaimed] resolves them against the current
// array:
//
//	hidden = l.CollectClaimed(freshItems, hidden)
//
// [RunLocks] records which runs are already converted.
package ledger
