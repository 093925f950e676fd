package core

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-easel/easel/pkg/errors"
	"github.com/go-easel/easel/pkg/graphics"
)

// RenderContext threads the state of an in-progress render pass through
// component functions: the owning instance, the drawing canvas, the frame
// timestamp, and the node currently rendering. Hooks read the current node
// from it; calling a hook with a context that is not inside a component
// render is a protocol violation and panics with a HookError.
type RenderContext struct {
	inst   *Instance
	canvas graphics.Canvas
	now    time.Time

	// node is the component currently rendering, nil between components.
	node *node

	// failedNode records the deepest node whose render panicked, for the
	// frame error report.
	failedNode string
}

// Canvas returns the drawing canvas for the current frame.
func (rc *RenderContext) Canvas() graphics.Canvas {
	return rc.canvas
}

// Now returns the frame timestamp supplied by the host scheduler.
func (rc *RenderContext) Now() time.Time {
	return rc.now
}

// Size returns the surface size in logical pixels.
func (rc *RenderContext) Size() graphics.Size {
	return rc.inst.surface.Size()
}

// RequestRender schedules a re-render of the owning instance.
func (rc *RenderContext) RequestRender() {
	rc.inst.RequestRender()
}

// RequestParentRender schedules a re-render of the parent instance when
// rendering inside a layer, so the parent re-composites the layer's
// output. It is a no-op on a top-level instance.
func (rc *RenderContext) RequestParentRender() {
	if rc.inst.parent != nil {
		rc.inst.parent.RequestRender()
	}
}

// slot consumes the next hook slot for the current node, pushing a fresh
// slot while the node is mounting and checking position and kind against
// the stored slot otherwise.
func (rc *RenderContext) slot(op string, kind slotKind) *slot {
	if rc == nil || rc.node == nil {
		panic(&errors.HookError{Op: op})
	}
	n := rc.node
	idx := n.hookCursor
	n.hookCursor++
	if n.mounting {
		s := &slot{kind: kind}
		n.slots = append(n.slots, s)
		return s
	}
	if idx >= len(n.slots) {
		panic(&errors.HookError{
			Op:   op,
			Node: n.id,
			Slot: idx,
			Want: kind.String(),
			Got:  "no slot",
		})
	}
	s := n.slots[idx]
	if s.kind != kind {
		panic(&errors.HookError{
			Op:   op,
			Node: n.id,
			Slot: idx,
			Want: kind.String(),
			Got:  s.kind.String(),
		})
	}
	return s
}

// Ref is a mutable cell whose identity is stable across renders.
type Ref[T any] struct {
	Current T
}

// UseRef returns this slot's persistent mutable cell, created with initial
// on mount. Writes to Current do not schedule a render.
//
// Example:
//
//	func drag(rc *core.RenderContext, props dragProps) core.Children {
//	    last := core.UseRef(rc, graphics.Offset{})
//	    ...
//	    last.Current = pos
//	}
func UseRef[T any](rc *RenderContext, initial T) *Ref[T] {
	s := rc.slot("core.UseRef", slotRef)
	if rc.node.mounting {
		s.value = &Ref[T]{Current: initial}
	}
	ref, ok := s.value.(*Ref[T])
	if !ok {
		panic(slotTypeError("core.UseRef", rc.node, &Ref[T]{}, s.value))
	}
	return ref
}

// Setter updates one state slot. Set stores a new value and Update derives
// one from the previous value; both always schedule a re-render of the
// owning instance, with no equality check at this layer.
type Setter[T any] struct {
	slot *slot
	inst *Instance
}

// Set stores value and schedules a re-render.
func (s Setter[T]) Set(value T) {
	s.slot.value = value
	s.inst.RequestRender()
}

// Update stores transform(previous value) and schedules a re-render.
func (s Setter[T]) Update(transform func(T) T) {
	prev, _ := s.slot.value.(T)
	s.slot.value = transform(prev)
	s.inst.RequestRender()
}

// UseState returns the slot's current value and its setter. The value is
// initial on the mounting render and whatever the setter last stored
// afterwards. Renders scheduled by the setter are coalesced: several Set
// calls before the next frame produce one render seeing the last value.
//
// Example:
//
//	func counter(rc *core.RenderContext, props counterProps) core.Children {
//	    count, setCount := core.UseState(rc, 0)
//	    core.UseEvent(rc, events.TypeClick, func(events.Event) {
//	        setCount.Update(func(n int) int { return n + 1 })
//	    }, core.EventOptions{Path: props.Hit, IncludeFill: true})
//	    ...
//	}
func UseState[T any](rc *RenderContext, initial T) (T, Setter[T]) {
	s := rc.slot("core.UseState", slotState)
	if rc.node.mounting {
		s.value = initial
	}
	value, ok := s.value.(T)
	if !ok && s.value != nil {
		panic(slotTypeError("core.UseState", rc.node, initial, s.value))
	}
	return value, Setter[T]{slot: s, inst: rc.inst}
}

// UseMemo returns the slot's cached value, recomputing it synchronously
// during the render pass when deps differ from the previous render. Nil
// deps recompute every render; an empty non-nil deps list never recomputes
// after mount.
func UseMemo[T any](rc *RenderContext, compute func() T, deps []any) T {
	s := rc.slot("core.UseMemo", slotMemo)
	if rc.node.mounting || depsChanged(s.deps, deps) {
		s.value = compute()
		s.deps = deps
	}
	value, ok := s.value.(T)
	if !ok && s.value != nil {
		var zero T
		panic(slotTypeError("core.UseMemo", rc.node, zero, s.value))
	}
	return value
}

// UseWhenChanged runs effect synchronously during render on mount and
// whenever deps change, with the same dependency semantics as UseMemo.
// An effect may return a teardown, which is registered with both the
// owning node's and the instance's teardown registries, so it runs exactly
// once whether the node unmounts, the instance unmounts, or the deps
// change first. On a change the previous teardown is detached from both
// registries and invoked before the effect runs again.
//
// Example:
//
//	core.UseWhenChanged(rc, func() func() {
//	    sub := feed.Subscribe(props.Topic)
//	    return sub.Close
//	}, []any{props.Topic})
func UseWhenChanged(rc *RenderContext, effect func() func(), deps []any) {
	s := rc.slot("core.UseWhenChanged", slotWhenChanged)
	if !rc.node.mounting && !depsChanged(s.deps, deps) {
		return
	}
	s.deps = deps

	if s.nodeCleanup != nil {
		s.nodeCleanup.Cancel()
		s.nodeCleanup = nil
	}
	if s.instCleanup != nil {
		s.instCleanup.Cancel()
		s.instCleanup = nil
	}
	if s.teardown != nil {
		teardown := s.teardown
		s.teardown = nil
		teardown()
	}

	cleanup := effect()
	if cleanup == nil {
		return
	}
	ran := false
	guarded := func() {
		if ran {
			return
		}
		ran = true
		cleanup()
	}
	s.teardown = guarded
	s.nodeCleanup = rc.node.teardowns.Add(guarded)
	s.instCleanup = rc.inst.teardowns.Add(guarded)
}

// depsChanged implements the shallow dependency comparison shared by
// UseMemo and UseWhenChanged: nil deps always count as changed, otherwise
// the lists must match element-wise.
func depsChanged(old, new []any) bool {
	if new == nil || old == nil {
		return true
	}
	if len(old) != len(new) {
		return true
	}
	for i := range new {
		if !sameValue(old[i], new[i]) {
			return true
		}
	}
	return false
}

// sameValue is shallow per-element equality: comparable values compare
// with ==, incomparable values (funcs, slices, maps) never compare equal.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	if !av.Type().Comparable() {
		return false
	}
	return a == b
}

// slotTypeError builds the protocol error for a slot whose stored value
// type does not match the hook's type parameter.
func slotTypeError(op string, n *node, want, got any) *errors.HookError {
	return &errors.HookError{
		Op:   op,
		Node: n.id,
		Slot: n.hookCursor - 1,
		Want: fmt.Sprintf("%T", want),
		Got:  fmt.Sprintf("%T", got),
	}
}
