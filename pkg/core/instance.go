package core

import (
	"sort"
	"sync"
	"time"

	"github.com/go-easel/easel/pkg/errors"
	"github.com/go-easel/easel/pkg/events"
)

// instanceState tracks the render scheduling state machine.
type instanceState int

const (
	stateIdle      instanceState = iota // no frame pending
	stateScheduled                      // a frame callback is queued with the host
	stateRendering                      // inside renderFrame
)

func (s instanceState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateScheduled:
		return "scheduled"
	case stateRendering:
		return "rendering"
	default:
		return "unknown"
	}
}

// Instance is the persistent state bound to one mounted surface: the node
// table keyed by path identity, the master teardown registry, the event
// registry, and the frame scheduler. All methods must be called from the
// render goroutine; only the package-level mount table is locked.
type Instance struct {
	surface Surface
	parent  *Instance

	root      Element
	nodes     map[string]*node
	teardowns *TeardownRegistry
	registry  *events.Registry

	state         instanceState
	pendingCancel func()
	lastRender    time.Time
	closed        bool
}

var (
	instancesMu sync.Mutex
	instances   = make(map[Surface]*Instance)
)

// Mount binds root to surface and schedules the first render. Mounting a
// surface that already has a live instance replaces that instance's root
// instead of creating a second one. The returned error is a configuration
// failure: the surface could not produce a drawing context.
func Mount(surface Surface, root Element) (*Instance, error) {
	if _, err := surface.Context(); err != nil {
		return nil, &errors.EaselError{
			Op:         "core.Mount",
			Kind:       errors.KindConfig,
			Err:        err,
			StackTrace: errors.CaptureStack(),
		}
	}
	instancesMu.Lock()
	existing, ok := instances[surface]
	instancesMu.Unlock()
	if ok && !existing.closed {
		existing.SetRoot(root)
		return existing, nil
	}
	in := newInstance(surface, root, nil)
	instancesMu.Lock()
	instances[surface] = in
	instancesMu.Unlock()
	in.RequestRender()
	return in, nil
}

// Update schedules a re-render of the surface's instance, replacing the
// root element unless it is zero. It reports whether the surface had a
// live instance.
func Update(surface Surface, root Element) bool {
	in, ok := InstanceFor(surface)
	if !ok {
		return false
	}
	if root.IsZero() {
		in.RequestRender()
	} else {
		in.SetRoot(root)
	}
	return true
}

// InstanceFor returns the live instance mounted on surface, if any.
func InstanceFor(surface Surface) (*Instance, bool) {
	instancesMu.Lock()
	defer instancesMu.Unlock()
	in, ok := instances[surface]
	if !ok || in.closed {
		return nil, false
	}
	return in, true
}

func newInstance(surface Surface, root Element, parent *Instance) *Instance {
	in := &Instance{
		surface:   surface,
		parent:    parent,
		root:      root,
		nodes:     make(map[string]*node),
		teardowns: NewTeardownRegistry(),
	}
	in.registry = events.NewRegistry(surface.SetCursor)
	return in
}

// SetRoot replaces the root element and schedules a render. If the new
// root has a different identity, the next render tears the old tree down
// and mounts the new one in place.
func (in *Instance) SetRoot(root Element) {
	in.root = root
	in.RequestRender()
}

// RequestRender schedules one render at the host's next frame opportunity.
// Requests made while a frame is already scheduled coalesce into it;
// requests made during rendering schedule the frame after the current one.
func (in *Instance) RequestRender() {
	if in.closed || in.pendingCancel != nil {
		return
	}
	in.pendingCancel = in.surface.ScheduleFrame(in.handleFrame)
	if in.state == stateIdle {
		in.state = stateScheduled
	}
}

// handleFrame is the scheduled frame callback. The pending handle is
// cleared before rendering so state setters fired during the pass schedule
// the next frame instead of being swallowed.
func (in *Instance) handleFrame(now time.Time) {
	if in.closed {
		return
	}
	in.pendingCancel = nil
	in.state = stateRendering
	in.renderFrame(now)
	if in.pendingCancel != nil {
		in.state = stateScheduled
	} else {
		in.state = stateIdle
	}
}

// DispatchPointer delivers a pointer event given in physical surface
// pixels: coordinates are divided by the surface scale before hit testing
// against registrations, which live in logical space.
func (in *Instance) DispatchPointer(ev events.Event) {
	if in.closed {
		return
	}
	if scale := in.surface.Scale(); scale > 0 && scale != 1 {
		ev.X /= scale
		ev.Y /= scale
	}
	in.registry.Dispatch(ev)
}

// Unmount destroys the instance: the pending frame is cancelled, the
// master teardown registry executes (cascading into every node's
// registry), event registrations are cleared and the cursor reset, and the
// surface is unbound. Unmounting twice is a no-op.
func (in *Instance) Unmount() {
	if in.closed {
		return
	}
	in.closed = true
	if in.pendingCancel != nil {
		in.pendingCancel()
		in.pendingCancel = nil
	}
	in.teardowns.Execute()
	in.registry.Clear()
	in.nodes = make(map[string]*node)
	in.state = stateIdle
	instancesMu.Lock()
	if instances[in.surface] == in {
		delete(instances, in.surface)
	}
	instancesMu.Unlock()
}

// Surface returns the surface this instance renders to.
func (in *Instance) Surface() Surface {
	return in.surface
}

// NodeInfo describes one mounted node, for test and debug introspection.
type NodeInfo struct {
	ID       string
	ParentID string
	Type     string
	Key      string
}

// Nodes returns the mounted node table sorted by id. The slice is a
// snapshot; it does not track later renders.
func (in *Instance) Nodes() []NodeInfo {
	infos := make([]NodeInfo, 0, len(in.nodes))
	for _, n := range in.nodes {
		infos = append(infos, NodeInfo{
			ID:       n.id,
			ParentID: n.parentID,
			Type:     n.element.TypeName(),
			Key:      n.element.Key(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// LastRenderAt returns the host timestamp of the most recent frame,
// whether it completed or failed.
func (in *Instance) LastRenderAt() time.Time {
	return in.lastRender
}
