// Package page coordinates a single page of the editor: render sessions,
// run segmentation, overlays and the glyphs they hide.
//
// A render is a two-step affair. The controller hands out a session with
// [Controller.BeginRender]; when the renderer finishes, the results are
// installed with [Controller.CompleteRender]. A render that was overtaken by
// a newer session is rejected with [ErrStaleRender].
//
//	s := ctrl.BeginRender()
//	// ... render the page
//	if err := ctrl.CompleteRender(s, page.Render{Items: items, Viewport: vp}); err != nil {
//	    return err
//	}
//	overlay, err := ctrl.ConvertAt(click)
//
// Each controller owns an [Emitter]; subscribe to it to follow conversions,
// erasures and restores. Overlays can be snapshotted with
// [Controller.Record] for an undo history and replayed with
// [Controller.Apply] and [Controller.Revert].
package page
