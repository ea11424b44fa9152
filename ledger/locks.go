package ledger

import "golang.org/x/exp/slices"

// RunLocks is the set of run identifiers that have been converted into
// editable overlays. A locked run must not be converted again until its
// overlay is deleted. Run identifiers are opaque strings chosen by the
// caller (for instance "page_run_pos").
//
// RunLocks is not safe for concurrent use.
type RunLocks struct {
	locked map[string]struct{}
}

// NewRunLocks creates an empty lock set
func NewRunLocks() *RunLocks {
	return &RunLocks{locked: make(map[string]struct{})}
}

// Lock locks id. It returns false, and changes nothing, if id is already
// locked.
func (r *RunLocks) Lock(id string) bool {
	if _, ok := r.locked[id]; ok {
		return false
	}
	r.locked[id] = struct{}{}
	return true
}

// Release unlocks id. It returns false if id was not locked.
func (r *RunLocks) Release(id string) bool {
	if _, ok := r.locked[id]; !ok {
		return false
	}
	delete(r.locked, id)
	return true
}

// Locked reports whether id is locked
func (r *RunLocks) Locked(id string) bool {
	_, ok := r.locked[id]
	return ok
}

// Len returns the number of locked runs
func (r *RunLocks) Len() int {
	return len(r.locked)
}

// IDs returns the locked identifiers in sorted order
func (r *RunLocks) IDs() []string {
	ids := make([]string, 0, len(r.locked))
	for id := range r.locked {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
