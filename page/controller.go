package page

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"sync"

	"github.com/tsawler/textlayer/cover"
	"github.com/tsawler/textlayer/dom"
	"github.com/tsawler/textlayer/hittest"
	"github.com/tsawler/textlayer/layout"
	"github.com/tsawler/textlayer/ledger"
	"github.com/tsawler/textlayer/model"
)

var (
	// ErrStaleRender is returned when a newer render started before this
	// one completed. The stale results are discarded.
	ErrStaleRender = errors.New("render superseded by a newer session")

	// ErrNotRendered is returned by operations that need a completed render
	ErrNotRendered = errors.New("page not rendered")

	// ErrRunLocked is returned when a run is already converted
	ErrRunLocked = errors.New("run already converted")

	// ErrNoRun is returned when no run matches the request
	ErrNoRun = errors.New("no such run")

	// ErrNoOverlay is returned when no overlay has the given ID
	ErrNoOverlay = errors.New("no such overlay")

	// ErrEmptySelection is returned by Erase when the rectangle touches no
	// visible glyph
	ErrEmptySelection = errors.New("selection contains no glyphs")
)

// Session identifies one render of the page. Sessions increase
// monotonically; only the latest one may complete.
type Session uint64

// Render is the output of the rendering collaborator for one session
type Render struct {
	// Items are the page's glyph items, in content order
	Items []model.GlyphItem

	// Layer is the rendered text layer. When nil, one is built from Items.
	Layer *dom.Layer

	// Viewport maps page space into container-relative viewport space
	Viewport model.Matrix

	// Origin is the container's absolute position, used when Layer is nil
	Origin model.Point

	// ViewportSize is the rendered page size in pixels and PageSize the PDF
	// page size in points; together they scale cover boxes
	ViewportSize cover.Size
	PageSize     cover.Size

	// RuleYs are the container-relative y positions of horizontal ruled
	// lines (table borders, underlines) that covers must not paint over
	RuleYs []float64
}

// Controller tracks one page: its latest render, the runs built from it,
// the overlays created by the user and the glyphs they hide. All methods
// are safe for concurrent use; the page's ledger and text layer are only
// touched under the controller's lock, and accessors return copies.
type Controller struct {
	mu sync.Mutex

	page       int
	logger     *slog.Logger
	segmenter  *layout.Segmenter
	paragraphs *layout.ParagraphDetector
	padding    float64
	ruleGap    float64
	events     *Emitter

	session  Session
	rendered bool
	current  Session

	items        []model.GlyphItem
	layer        *dom.Layer
	runs         []layout.Run
	merged       []*dom.Node
	paras        []layout.Paragraph
	glyphRects   []hittest.CachedRect
	viewportSize cover.Size
	pageSize     cover.Size
	rules        []float64

	claims   *ledger.Ledger
	locks    *ledger.RunLocks
	overlays map[string]*Overlay
	order    []string
	hidden   []model.GlyphItem
	erasures int
}

// New creates a controller for a page (numbered from 1)
func New(page int, opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	segmenter := layout.NewSegmenterWithConfig(o.runConfig)
	if o.guardrails != nil {
		segmenter.SplitWideGaps(*o.guardrails)
	}

	return &Controller{
		page:       page,
		logger:     o.logger.With("page", page),
		segmenter:  segmenter,
		paragraphs: layout.NewParagraphDetectorWithConfig(o.paraConfig),
		padding:    o.coverPadding,
		ruleGap:    o.ruleGap,
		events:     NewEmitter(),
		claims:     ledger.New(),
		locks:      ledger.NewRunLocks(),
		overlays:   make(map[string]*Overlay),
	}
}

// Page returns the page number
func (c *Controller) Page() int {
	return c.page
}

// Events returns the controller's event emitter
func (c *Controller) Events() *Emitter {
	return c.events
}

// BeginRender starts a new render session, superseding any render still in
// flight
func (c *Controller) BeginRender() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session++
	return c.session
}

// CompleteRender installs the results of a render session. It returns
// ErrStaleRender, and changes nothing, if a newer session has begun.
//
// Runs are rebuilt from the fresh items, their nodes merged, and the hidden
// items recomputed from the claim ledger. Claims and overlays survive the
// render.
func (c *Controller) CompleteRender(s Session, r Render) error {
	c.mu.Lock()
	if s != c.session {
		latest := c.session
		c.mu.Unlock()
		c.logger.Debug("discarding stale render", "session", s, "latest", latest)
		return fmt.Errorf("complete render %d: %w", s, ErrStaleRender)
	}

	layer := r.Layer
	if layer == nil {
		layer = dom.Build(r.Items, r.Viewport, r.Origin)
	}

	// Snapshot glyph geometry before merging moves the nodes. Hidden glyphs
	// keep their place in runs; hit-testing filters them by claim.
	rects := layer.Geometry()
	rectOf := cachedRectFunc(rects)

	runs := c.segmenter.SegmentWithRects(r.Items, rectOf)
	merged := dom.MergeRuns(layer, runs, c.page)
	paras := c.paragraphs.Detect(runs)
	dom.TagParagraphs(merged, runs, paras)

	c.items = r.Items
	c.layer = layer
	c.runs = runs
	c.merged = merged
	c.paras = paras
	c.glyphRects = rects
	c.viewportSize = r.ViewportSize
	c.pageSize = r.PageSize
	c.rules = append([]float64(nil), r.RuleYs...)
	c.rendered = true
	c.current = s

	for _, idx := range c.claims.Indices() {
		if idx >= len(r.Items) {
			c.logger.Warn("claimed glyph missing after render", "index", idx, "items", len(r.Items))
		}
	}
	c.refreshHidden()
	layer.SetHidden(c.claims.Indices(), true)

	c.logger.Debug("render complete", "session", s, "items", len(r.Items), "runs", len(runs), "paragraphs", len(paras))
	ev := Event{Kind: EventRendered, Page: c.page, Session: s}
	c.mu.Unlock()

	c.events.Emit(ev)
	return nil
}

// cachedRectFunc looks glyph rectangles up in a layer snapshot
func cachedRectFunc(rects []hittest.CachedRect) layout.RectFunc {
	byIndex := make(map[int]model.Rect, len(rects))
	for _, r := range rects {
		byIndex[r.Index] = r.Rect
	}
	return func(idx int, _ *model.GlyphItem) (model.Rect, bool) {
		r, ok := byIndex[idx]
		return r, ok
	}
}

// ConvertRun turns run runIndex into an editable text overlay and hides its
// glyphs
func (c *Controller) ConvertRun(runIndex int) (*Overlay, error) {
	c.mu.Lock()
	overlay, err := c.convertRun(runIndex)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("convert run %d: %w", runIndex, err)
	}
	ev := Event{Kind: EventConverted, Page: c.page, Session: c.current, OverlayID: overlay.ID, Indices: overlay.Indices}
	out := overlay.clone()
	c.mu.Unlock()

	c.events.Emit(ev)
	return out, nil
}

func (c *Controller) convertRun(runIndex int) (*Overlay, error) {
	if !c.rendered {
		return nil, ErrNotRendered
	}
	if runIndex < 0 || runIndex >= len(c.runs) {
		return nil, ErrNoRun
	}
	run := c.runs[runIndex]
	rep := c.merged[runIndex]
	if rep == nil {
		return nil, ErrNoRun
	}
	id, _ := rep.Attr(dom.AttrRunID)
	if !c.locks.Lock(id) {
		return nil, ErrRunLocked
	}

	accepted := c.claims.Mark(ledger.Ints(run.MemberIndices), c.items)
	c.layer.SetHidden(accepted, true)

	overlay := &Overlay{
		ID:         id,
		Kind:       KindText,
		Page:       c.page,
		RunIndex:   run.Index,
		Text:       run.Text,
		Bounds:     run.BoundingBox,
		Cover:      cover.FromBounds(run.BoundingBox, c.viewportSize, c.pageSize, c.padding),
		CoverRects: c.coverRects(run.BoundingBox.Expand(c.padding)),
		Indices:    accepted,
		FontName:   run.FontName,
		FontSize:   run.FontSize,
		Color:      run.Color,
		Vertical:   run.Vertical,
		Rotation:   run.RotationDegrees,
	}
	c.addOverlay(overlay)

	c.logger.Debug("run converted", "run", id, "glyphs", len(accepted))
	return overlay, nil
}

// ConvertAt converts the run under a container-relative point. The point is
// resolved against the same render the run is converted from.
func (c *Controller) ConvertAt(p model.Point) (*Overlay, error) {
	c.mu.Lock()
	overlay, err := c.convertAt(p)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("convert at %v,%v: %w", p.X, p.Y, err)
	}
	ev := Event{Kind: EventConverted, Page: c.page, Session: c.current, OverlayID: overlay.ID, Indices: overlay.Indices}
	out := overlay.clone()
	c.mu.Unlock()

	c.events.Emit(ev)
	return out, nil
}

func (c *Controller) convertAt(p model.Point) (*Overlay, error) {
	runIndex, err := c.runAt(p)
	if err != nil {
		return nil, err
	}
	return c.convertRun(runIndex)
}

// RunAt returns the index of the run under a container-relative point
func (c *Controller) RunAt(p model.Point) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runAt(p)
}

func (c *Controller) runAt(p model.Point) (int, error) {
	if !c.rendered {
		return -1, ErrNotRendered
	}
	hits := hittest.Sorted(c.glyphsIn(hittest.Selection{X: p.X, Y: p.Y}))
	for _, idx := range hits {
		for i := range c.runs {
			if c.runs[i].Contains(idx) {
				return i, nil
			}
		}
	}
	return -1, ErrNoRun
}

// glyphsIn hit-tests the render's glyph geometry, skipping hidden glyphs
func (c *Controller) glyphsIn(sel hittest.Selection) []int {
	hits := hittest.IndicesInRect(hittest.Query[hittest.CachedRect]{
		Rect:       &sel,
		Candidates: c.glyphRects,
		Origin:     &model.Point{},
		Strategy:   hittest.CachedStrategy(),
	})
	visible := hits[:0]
	for _, idx := range hits {
		if !c.claims.Claimed(idx) {
			visible = append(visible, idx)
		}
	}
	return visible
}

// Erase hides every visible glyph touched by a container-relative drag
// rectangle and records the erasure as an overlay
func (c *Controller) Erase(sel hittest.Selection) (*Overlay, error) {
	c.mu.Lock()
	overlay, err := c.erase(sel)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("erase: %w", err)
	}
	ev := Event{Kind: EventErased, Page: c.page, Session: c.current, OverlayID: overlay.ID, Indices: overlay.Indices}
	out := overlay.clone()
	c.mu.Unlock()

	c.events.Emit(ev)
	return out, nil
}

func (c *Controller) erase(sel hittest.Selection) (*Overlay, error) {
	if !c.rendered {
		return nil, ErrNotRendered
	}
	hits := hittest.Sorted(c.glyphsIn(sel))
	accepted := c.claims.Mark(ledger.Ints(hits), c.items)
	if len(accepted) == 0 {
		return nil, ErrEmptySelection
	}
	c.layer.SetHidden(accepted, true)

	c.erasures++
	bounds := sel.Rect()
	overlay := &Overlay{
		ID:         fmt.Sprintf("%d_erase_%d", c.page, c.erasures),
		Kind:       KindErase,
		Page:       c.page,
		RunIndex:   -1,
		Bounds:     bounds,
		Cover:      cover.FromBounds(bounds, c.viewportSize, c.pageSize, 0),
		CoverRects: c.coverRects(bounds),
		Indices:    accepted,
	}
	c.addOverlay(overlay)

	c.logger.Debug("glyphs erased", "overlay", overlay.ID, "glyphs", len(accepted))
	return overlay, nil
}

// DeleteOverlay removes an overlay, releases its claims and, for text
// overlays, unlocks its run. It returns the glyph indices that became
// visible again.
func (c *Controller) DeleteOverlay(id string) ([]int, error) {
	c.mu.Lock()
	released, err := c.deleteOverlay(id)
	if err != nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("delete overlay %q: %w", id, err)
	}
	ev := Event{Kind: EventRestored, Page: c.page, Session: c.current, OverlayID: id, Indices: released}
	c.mu.Unlock()

	c.events.Emit(ev)
	return released, nil
}

func (c *Controller) deleteOverlay(id string) ([]int, error) {
	overlay, ok := c.overlays[id]
	if !ok {
		return nil, ErrNoOverlay
	}

	released := c.claims.Restore(ledger.Ints(overlay.Indices))
	if c.layer != nil {
		c.layer.SetHidden(released, false)
	}
	if overlay.Kind == KindText {
		c.locks.Release(id)
	}

	delete(c.overlays, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.refreshHidden()

	c.logger.Debug("overlay deleted", "overlay", id, "released", len(released))
	return released, nil
}

func (c *Controller) addOverlay(o *Overlay) {
	c.overlays[o.ID] = o
	c.order = append(c.order, o.ID)
	c.refreshHidden()
}

func (c *Controller) coverRects(bounds model.Rect) []model.Rect {
	return cover.SplitByLines([]model.Rect{bounds}, c.rules, c.ruleGap)
}

// CoverMask rasterises the cover rectangles of every overlay into a
// container-sized alpha mask. Painting through it blanks the original
// glyphs on a rendered page image while leaving ruled lines intact.
func (c *Controller) CoverMask(width, height int) *image.Alpha {
	c.mu.Lock()
	var rects []model.Rect
	for _, id := range c.order {
		rects = append(rects, c.overlays[id].CoverRects...)
	}
	c.mu.Unlock()
	return cover.Mask(width, height, rects)
}

// PaintCovers paints src over dst wherever an overlay hides glyphs. dst is
// the rendered page image, aligned with the layer container.
func (c *Controller) PaintCovers(dst draw.Image, src image.Image) {
	b := dst.Bounds()
	cover.Apply(dst, c.CoverMask(b.Dx(), b.Dy()), src)
}

func (c *Controller) refreshHidden() {
	c.hidden = c.claims.CollectClaimed(c.items, c.hidden)
}

// HiddenItems returns the glyph items currently hidden behind overlays, in
// index order
func (c *Controller) HiddenItems() []model.GlyphItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.GlyphItem(nil), c.hidden...)
}

// HiddenIndices returns the claimed glyph indices in ascending order
func (c *Controller) HiddenIndices() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.claims.Indices()
}

// Runs returns the runs of the latest render
func (c *Controller) Runs() []layout.Run {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]layout.Run(nil), c.runs...)
}

// Paragraphs returns the paragraphs of the latest render
func (c *Controller) Paragraphs() []layout.Paragraph {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]layout.Paragraph(nil), c.paras...)
}

// Layer returns a copy of the text layer of the latest render, or nil.
// Later conversions and renders do not change the copy.
func (c *Controller) Layer() *dom.Layer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.layer == nil {
		return nil
	}
	return c.layer.Clone()
}

// Overlays returns the overlays in creation order
func (c *Controller) Overlays() []Overlay {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Overlay, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.overlays[id].clone())
	}
	return out
}

// Overlay returns the overlay with the given ID
func (c *Controller) Overlay(id string) (Overlay, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.overlays[id]
	if !ok {
		return Overlay{}, false
	}
	return *o.clone(), true
}

// Converted reports whether the run with the given ID is converted
func (c *Controller) Converted(runID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locks.Locked(runID)
}

// Session returns the session of the latest completed render (0 before the
// first render)
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
