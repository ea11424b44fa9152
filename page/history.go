package page

import (
	"fmt"

	"github.com/tsawler/textlayer/ledger"
)

// Record is what the undo history keeps for an overlay: enough to remove it
// and to recreate it with the same claims
type Record struct {
	Overlay Overlay
}

// ID returns the recorded overlay's ID
func (r Record) ID() string {
	return r.Overlay.ID
}

// Record snapshots an overlay for the history
func (c *Controller) Record(id string) (Record, bool) {
	o, ok := c.Overlay(id)
	if !ok {
		return Record{}, false
	}
	return Record{Overlay: o}, true
}

// Apply recreates a recorded overlay (redo). Its indices are claimed again
// and, for a text overlay, its run is locked. Indices no longer present on
// the page are dropped from the recreated overlay.
func (c *Controller) Apply(rec Record) error {
	c.mu.Lock()
	ev, err := c.apply(rec)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("apply overlay %q: %w", rec.ID(), err)
	}

	c.events.Emit(ev)
	return nil
}

func (c *Controller) apply(rec Record) (Event, error) {
	o := rec.Overlay.clone()
	if _, exists := c.overlays[o.ID]; exists {
		return Event{}, ErrRunLocked
	}
	if o.Kind == KindText && !c.locks.Lock(o.ID) {
		return Event{}, ErrRunLocked
	}

	o.Indices = c.claims.Mark(ledger.Ints(o.Indices), c.items)
	if c.layer != nil {
		c.layer.SetHidden(o.Indices, true)
	}
	c.addOverlay(o)

	kind := EventConverted
	if o.Kind == KindErase {
		kind = EventErased
	}
	c.logger.Debug("overlay reapplied", "overlay", o.ID, "glyphs", len(o.Indices))
	return Event{Kind: kind, Page: c.page, Session: c.current, OverlayID: o.ID, Indices: o.Indices}, nil
}

// Revert removes a recorded overlay (undo). It is DeleteOverlay by record.
func (c *Controller) Revert(rec Record) ([]int, error) {
	return c.DeleteOverlay(rec.ID())
}
