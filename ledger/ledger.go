package ledger

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/tsawler/textlayer/model"
)

// Ledger is a per-page, reference-counted set of claimed glyph indices. A
// claimed glyph is hidden behind an edit overlay. The same glyph may be
// claimed by more than one overlay; it is only released when the last claim
// is restored.
//
// A Ledger is not safe for concurrent use. Keep one per page and serialize
// access to it.
type Ledger struct {
	// counts never holds a value below 1
	counts map[int]int
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{counts: make(map[int]int)}
}

// Mark claims the given indices. Input is normalized first (see
// NormalizeIndices); indices outside universe are skipped because they refer
// to glyphs a re-render removed. It returns the accepted indices in input
// order.
func (l *Ledger) Mark(indices []any, universe []model.GlyphItem) []int {
	return l.MarkWithin(indices, len(universe))
}

// MarkWithin is Mark for a universe described only by its size
func (l *Ledger) MarkWithin(indices []any, size int) []int {
	normalized := NormalizeIndices(indices)
	accepted := make([]int, 0, len(normalized))
	for _, idx := range normalized {
		if idx >= size {
			continue
		}
		l.counts[idx]++
		accepted = append(accepted, idx)
	}
	return accepted
}

// Restore releases one claim on each of the given indices. It returns the
// indices whose last claim was released, in input order. Indices that are
// not claimed are ignored, so restoring twice is harmless.
func (l *Ledger) Restore(indices []any) []int {
	normalized := NormalizeIndices(indices)
	released := make([]int, 0, len(normalized))
	for _, idx := range normalized {
		count, ok := l.counts[idx]
		if !ok {
			continue
		}
		if count <= 1 {
			delete(l.counts, idx)
			released = append(released, idx)
			continue
		}
		l.counts[idx] = count - 1
	}
	return released
}

// CollectClaimed returns the claimed glyph items, looked up fresh in
// universe, in ascending index order. An empty ledger yields an empty
// slice. A non-empty ledger with an empty universe (a render still in
// flight) yields fallback unchanged, so the hidden set is not cleared while
// the glyph array is being rebuilt.
func (l *Ledger) CollectClaimed(universe, fallback []model.GlyphItem) []model.GlyphItem {
	return Collect(l, universe, fallback)
}

// Collect is CollectClaimed for any arena type
func Collect[T any](l *Ledger, universe, fallback []T) []T {
	indices := l.Indices()
	if len(indices) == 0 {
		return []T{}
	}
	if len(universe) == 0 {
		return fallback
	}

	out := make([]T, 0, len(indices))
	for _, idx := range indices {
		if idx < len(universe) {
			out = append(out, universe[idx])
		}
	}
	return out
}

// Count returns the number of outstanding claims on idx
func (l *Ledger) Count(idx int) int {
	return l.counts[idx]
}

// Claimed reports whether idx has at least one claim
func (l *Ledger) Claimed(idx int) bool {
	return l.counts[idx] > 0
}

// Len returns the number of claimed indices
func (l *Ledger) Len() int {
	return len(l.counts)
}

// Indices returns the claimed indices in ascending order
func (l *Ledger) Indices() []int {
	indices := make([]int, 0, len(l.counts))
	for idx, count := range l.counts {
		if count > 0 {
			indices = append(indices, idx)
		}
	}
	slices.Sort(indices)
	return indices
}

// Snapshot returns a copy of the claim counts
func (l *Ledger) Snapshot() map[int]int {
	return maps.Clone(l.counts)
}

// Reset drops every claim
func (l *Ledger) Reset() {
	l.counts = make(map[int]int)
}

// Ints converts an int slice into the []any form the ledger accepts
func Ints(indices []int) []any {
	out := make([]any, len(indices))
	for i, idx := range indices {
		out[i] = idx
	}
	return out
}

// NormalizeIndices parses raw index values and returns the valid ones,
// de-duplicated, in first-seen order. Values are parsed as base-10 integers
// the way a lenient integer parser would: strings may carry leading white
// space, a sign and trailing junk ("12px" is 12); floats are truncated.
// Unparseable, non-finite and negative values are dropped.
func NormalizeIndices(raw []any) []int {
	if len(raw) == 0 {
		return []int{}
	}

	normalized := make([]int, 0, len(raw))
	handled := make(map[int]bool, len(raw))
	for _, v := range raw {
		idx, ok := ParseIndex(v)
		if !ok || handled[idx] {
			continue
		}
		handled[idx] = true
		normalized = append(normalized, idx)
	}
	return normalized
}

// ParseIndex parses a single raw index value
func ParseIndex(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return checkIndex(int64(x))
	case int8:
		return checkIndex(int64(x))
	case int16:
		return checkIndex(int64(x))
	case int32:
		return checkIndex(int64(x))
	case int64:
		return checkIndex(x)
	case uint:
		return checkUnsigned(uint64(x))
	case uint8:
		return checkUnsigned(uint64(x))
	case uint16:
		return checkUnsigned(uint64(x))
	case uint32:
		return checkUnsigned(uint64(x))
	case uint64:
		return checkUnsigned(x)
	case float32:
		return checkFloat(float64(x))
	case float64:
		return checkFloat(x)
	case json.Number:
		return parseIndexString(string(x))
	case string:
		return parseIndexString(x)
	case []byte:
		return parseIndexString(string(x))
	case interface{ String() string }:
		return parseIndexString(x.String())
	default:
		return 0, false
	}
}

func checkIndex(v int64) (int, bool) {
	if v < 0 || v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

func checkUnsigned(v uint64) (int, bool) {
	if v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}

func checkFloat(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return checkIndex(int64(math.Trunc(v)))
}

// parseIndexString reads an optional sign and the leading decimal digits
func parseIndexString(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return checkIndex(n)
}
