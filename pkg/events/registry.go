package events

import (
	"github.com/go-easel/easel/pkg/errors"
	"github.com/go-easel/easel/pkg/graphics"
)

// registration is the registry's live record for one handler.
type registration struct {
	Registration

	// isOver tracks hover state for mouseover/mouseout synthesis.
	isOver bool
}

// Registry holds the active handler registrations for one surface instance.
// Handlers fire in registration order. Registrations capture their hit-test
// state up front, so dispatch between two renders tests against what was
// drawn last.
//
// A Registry is confined to its instance's render goroutine and is not safe
// for concurrent use.
type Registry struct {
	regs map[Type][]*registration

	// setCursor applies a claimed cursor to the host surface. May be nil.
	setCursor func(name string)

	// moveTick numbers pointer-move dispatches so cursor claims can be
	// resolved first-writer-wins within a single move.
	moveTick    uint64
	claimedTick uint64
	cursor      string
}

// NewRegistry creates an empty registry. setCursor receives cursor names
// claimed by hover handlers, with "" meaning reset; pass nil to ignore
// cursor changes.
func NewRegistry(setCursor func(name string)) *Registry {
	return &Registry{
		regs:      make(map[Type][]*registration),
		setCursor: setCursor,
	}
}

// Add registers a handler and returns its removal function. Removing twice
// is a no-op. Mouseover and mouseout registrations start not-over and are
// driven by mousemove dispatches.
func (r *Registry) Add(reg Registration) (remove func()) {
	live := &registration{Registration: reg}
	r.regs[reg.Type] = append(r.regs[reg.Type], live)
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		list := r.regs[reg.Type]
		for i, candidate := range list {
			if candidate == live {
				r.regs[reg.Type] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
}

// Count returns the number of active registrations for the given type.
func (r *Registry) Count(typ Type) int {
	return len(r.regs[typ])
}

// Clear drops every registration and resets hover and cursor state.
func (r *Registry) Clear() {
	r.regs = make(map[Type][]*registration)
	if r.cursor != "" {
		r.cursor = ""
		if r.setCursor != nil {
			r.setCursor("")
		}
	}
}

// Dispatch delivers one pointer event. Mousemove additionally drives the
// synthesized mouseover/mouseout transitions, and TypeLeave forces every
// hover region out. A handler panic is reported and does not stop the
// remaining handlers of the same dispatch.
func (r *Registry) Dispatch(ev Event) {
	switch ev.Type {
	case TypeMouseMove:
		r.moveTick++
		r.dispatchType(TypeMouseMove, ev)
		r.dispatchHover(ev, false)
	case TypeLeave:
		r.moveTick++
		r.dispatchHover(ev, true)
	default:
		r.dispatchType(ev.Type, ev)
	}
}

// dispatchType fires the predicate-gated handlers of one type. It iterates
// a snapshot so handlers may add or remove registrations mid-dispatch.
func (r *Registry) dispatchType(typ Type, ev Event) {
	for _, reg := range r.snapshot(typ) {
		if reg.hits(ev.Offset()) {
			r.invoke(reg, ev)
		}
	}
}

// dispatchHover updates hover state per registration and fires transition
// handlers: mouseover on entering a region, mouseout on leaving it.
// leaving forces every region out regardless of position.
func (r *Registry) dispatchHover(ev Event, leaving bool) {
	for _, reg := range r.snapshot(TypeMouseOver) {
		hit := !leaving && reg.hits(ev.Offset())
		if hit && !reg.isOver {
			reg.isOver = true
			r.invoke(reg, ev)
			continue
		}
		reg.isOver = hit
	}
	for _, reg := range r.snapshot(TypeMouseOut) {
		hit := !leaving && reg.hits(ev.Offset())
		if !hit && reg.isOver {
			reg.isOver = false
			r.invoke(reg, ev)
			continue
		}
		reg.isOver = hit
	}
}

func (r *Registry) snapshot(typ Type) []*registration {
	list := r.regs[typ]
	if len(list) == 0 {
		return nil
	}
	out := make([]*registration, len(list))
	copy(out, list)
	return out
}

func (r *Registry) invoke(reg *registration, ev Event) {
	defer func() {
		if rec := recover(); rec != nil {
			errors.ReportFrameError(&errors.FrameError{
				Phase:      "dispatch",
				Node:       reg.Node,
				Recovered:  rec,
				StackTrace: errors.CaptureStack(),
			})
		}
	}()
	reg.Handler(ev)
}

// hits re-tests the point against the registration's captured state.
func (g *registration) hits(pt graphics.Offset) bool {
	if !g.insideClips(pt) {
		return false
	}
	if g.Path == nil {
		return true
	}
	local := g.Transform.Invert().TransformPoint(pt)
	if g.IncludeFill && graphics.PointInFill(g.Path, local, g.FillRule) {
		return true
	}
	if g.StrokeWidth > 0 && graphics.PointInStroke(g.Path, local, g.StrokeWidth) {
		return true
	}
	return false
}

// insideClips applies the captured clip snapshot: with no clips everything
// passes, otherwise the point must fall inside at least one entry under
// that entry's own captured transform.
func (g *registration) insideClips(pt graphics.Offset) bool {
	if len(g.Clips) == 0 {
		return true
	}
	for _, clip := range g.Clips {
		if clip.Contains(pt) {
			return true
		}
	}
	return false
}

// ClaimCursor sets the host cursor unless another claim already happened
// during the current pointer-move dispatch. Call from mouseover handlers.
func (r *Registry) ClaimCursor(name string) {
	if r.claimedTick == r.moveTick {
		return
	}
	r.claimedTick = r.moveTick
	if r.cursor == name {
		return
	}
	r.cursor = name
	if r.setCursor != nil {
		r.setCursor(name)
	}
}

// ReleaseCursor resets the host cursor unless the current pointer-move
// dispatch claimed it. Call from mouseout handlers.
func (r *Registry) ReleaseCursor() {
	if r.claimedTick == r.moveTick {
		return
	}
	if r.cursor == "" {
		return
	}
	r.cursor = ""
	if r.setCursor != nil {
		r.setCursor("")
	}
}

// Cursor returns the currently applied cursor name, "" when unset.
func (r *Registry) Cursor() string {
	return r.cursor
}
