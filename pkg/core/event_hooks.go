package core

import (
	"github.com/go-easel/easel/pkg/errors"
	"github.com/go-easel/easel/pkg/events"
	"github.com/go-easel/easel/pkg/graphics"
)

// EventOptions describe the interactive region for UseEvent and UseCursor.
type EventOptions struct {
	// Path is the hit shape expressed in the coordinate space active at
	// the hook call. Nil registers a surface-wide handler.
	Path *graphics.Path

	// FillRule applies to fill containment tests.
	FillRule graphics.FillRule

	// IncludeFill makes the path's fill interior interactive.
	IncludeFill bool

	// StrokeWidth, when positive, makes the path's outline interactive
	// within that width.
	StrokeWidth float64
}

// UseEvent registers handler for pointer events of the given type hitting
// the options' shape. The canvas transform and clip stack are captured at
// the call, so hit tests keep working against the geometry this render
// drew, whatever the canvas does afterwards. The slot's previous
// registration is always removed first; passing a nil handler removes
// without re-registering.
//
// Registering mouseover or mouseout tracks pointer presence for the shape
// and delivers the transition events; they fire after plain mousemove
// handlers for the same pointer movement.
func UseEvent(rc *RenderContext, typ events.Type, handler events.Handler, opts EventOptions) {
	s := rc.slot("core.UseEvent", slotEvent)
	if s.remove != nil {
		s.remove()
		s.remove = nil
	}
	if s.nodeCleanup != nil {
		s.nodeCleanup.Cancel()
		s.nodeCleanup = nil
	}
	if handler == nil {
		return
	}
	remove := rc.inst.registry.Add(events.Registration{
		Type:        typ,
		Handler:     handler,
		Node:        rc.node.id,
		Path:        opts.Path.Clone(),
		FillRule:    opts.FillRule,
		IncludeFill: opts.IncludeFill,
		StrokeWidth: opts.StrokeWidth,
		Transform:   rc.canvas.Transform(),
		Clips:       rc.canvas.ClipStack(),
	})
	s.remove = remove
	s.nodeCleanup = rc.node.teardowns.Add(remove)
}

// UseCursor shows the named pointer cursor while the pointer is over the
// shape. It registers a mouseover handler that claims the cursor and a
// mouseout handler that releases it; when shapes overlap, the first claim
// per pointer movement wins. Consumes two event slots.
func UseCursor(rc *RenderContext, cursor string, opts EventOptions) {
	registry := rc.inst.registry
	UseEvent(rc, events.TypeMouseOver, func(events.Event) {
		registry.ClaimCursor(cursor)
	}, opts)
	UseEvent(rc, events.TypeMouseOut, func(events.Event) {
		registry.ReleaseCursor()
	}, opts)
}

// Clip restricts drawing and event hit regions to path for the remainder
// of the current component and its children. The region is part of the
// canvas save stack, so it pops automatically when the component's subtree
// finishes rendering. Clip holds no slot state; it may be called
// conditionally.
func Clip(rc *RenderContext, path *graphics.Path, rule graphics.FillRule) {
	if rc == nil || rc.node == nil {
		panic(&errors.HookError{Op: "core.Clip"})
	}
	rc.canvas.ClipPath(path, rule)
}
