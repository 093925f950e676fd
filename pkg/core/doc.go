// Package core provides the component framework: elements, hooks, the
// render loop, and instance lifecycle.
//
// Components are plain functions from props to children, declared once and
// re-run on every render. The framework keeps per-component state alive
// between runs, redraws the whole surface each frame, and figures out which
// components mounted and unmounted by walking the tree.
//
// # Elements and Identity
//
// An Element is an immutable description of one component invocation:
//
//	func app(rc *core.RenderContext, props appProps) core.Children {
//	    return core.Many(
//	        core.Of(toolbar, toolbarProps{Title: props.Title}),
//	        core.Of(canvasBody, bodyProps{}).WithKey("body"),
//	    )
//	}
//
//	core.Mount(surface, core.Of(app, appProps{Title: "easel"}))
//
// Identity is positional: each node's id is its parent's id plus the
// component's type name and optional key. State survives re-renders as
// long as the same component renders at the same path; give siblings of
// the same type distinct keys when their order can change.
//
// # Hooks
//
// Hooks attach state to the current node by call order, so every render of
// a component must call the same hooks in the same sequence. Do not call
// hooks inside conditionals or loops whose shape varies between renders.
//
//	count, setCount := core.UseState(rc, 0)
//	core.UseEvent(rc, events.TypeClick, func(events.Event) {
//	    setCount.Update(func(n int) int { return n + 1 })
//	}, core.EventOptions{Path: hit, IncludeFill: true})
//
// UseRef holds a mutable cell, UseState schedules renders on write,
// UseMemo caches derived values, and UseWhenChanged runs effects with
// teardown. UseEvent and UseCursor make drawn shapes interactive.
//
// # Rendering
//
// Renders are scheduled, never synchronous: setters and RequestRender mark
// the instance dirty and the host's frame scheduler invokes one pass at the
// next opportunity, however many requests arrived before it. A pass clears
// the surface, runs the root component, recurses into returned children,
// and finally tears down every node the walk no longer produced. A panic
// during the pass fails the whole frame: it is reported through
// errors.SetHandler and the frame's partial output is abandoned, but the
// instance stays mounted.
//
// Everything here is single-threaded. Mount, hooks, dispatch, and
// unmount must all run on the goroutine that services the surface's
// frame callbacks.
package core
