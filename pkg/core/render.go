package core

import (
	"sort"
	"strconv"
	"time"

	"github.com/go-easel/easel/pkg/errors"
	"github.com/go-easel/easel/pkg/graphics"
)

// rootID is the fixed identity of the root component.
const rootID = "root"

// renderWalk tracks which node ids one render pass produced. Ids present
// before the pass but never visited belong to unmounted components and are
// collected after the tree completes.
type renderWalk struct {
	seen   map[string]struct{}
	unseen map[string]struct{}
}

// renderFrame runs one full render pass: clear, walk the tree from the
// root, then collect unmounted nodes. A panic anywhere in the walk fails
// the whole frame: it is reported through the error handler, the pass
// stops, and collection is skipped so no node is torn down based on a
// partial walk. The instance stays mounted and renders again on the next
// request.
func (in *Instance) renderFrame(now time.Time) {
	canvas, err := in.surface.Context()
	if err != nil {
		errors.Report(&errors.EaselError{
			Op:         "core.renderFrame",
			Kind:       errors.KindRender,
			Err:        err,
			StackTrace: errors.CaptureStack(),
		})
		return
	}
	in.lastRender = now
	rc := &RenderContext{inst: in, canvas: canvas, now: now}

	walk := &renderWalk{
		seen:   make(map[string]struct{}),
		unseen: make(map[string]struct{}, len(in.nodes)),
	}
	for id := range in.nodes {
		walk.unseen[id] = struct{}{}
	}
	walk.seen[rootID] = struct{}{}
	delete(walk.unseen, rootID)

	if !in.runWalk(rc, walk, canvas) {
		return
	}
	in.collectUnseen(walk)
}

// runWalk clears the canvas and renders the tree, converting any panic
// into a frame error report.
func (in *Instance) runWalk(rc *RenderContext, walk *renderWalk, canvas graphics.Canvas) (completed bool) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportFrameError(&errors.FrameError{
				Phase:      "render",
				Node:       rc.failedNode,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
			})
		}
	}()
	canvas.Clear(graphics.ColorTransparent)
	in.visit(rc, walk, in.root, rootID, "")
	return true
}

// visit renders one element at an already-assigned id and recurses into
// the children it returns. Canvas state saved here is restored after the
// whole subtree renders, so transforms and clips applied by the component
// scope over its children and pop structurally.
func (in *Instance) visit(rc *RenderContext, walk *renderWalk, el Element, id, parentID string) {
	if el.IsZero() {
		return
	}
	n, exists := in.nodes[id]
	if exists && !sameIdentity(n.element, el) {
		// Same id, different component. Child ids embed the component
		// type name, so only the fixed root id reaches this: tear the old
		// tree state down and remount in place.
		in.removeNode(n)
		exists = false
	}
	if !exists {
		n = newNode(id, parentID)
		n.teardowns.Follow(in.teardowns)
		in.nodes[id] = n
	}
	n.mounting = !exists
	n.element = el
	n.hookCursor = 0

	prev := rc.node
	rc.node = n
	canvas := rc.canvas
	canvas.Save()
	defer func() {
		canvas.Restore()
		rc.node = prev
	}()

	children := in.callComponent(rc, n, el)

	if !n.mounting && n.hookCursor != len(n.slots) {
		panic(&errors.HookError{
			Op:   "core.render",
			Node: n.id,
			Slot: n.hookCursor,
			Want: strconv.Itoa(len(n.slots)) + " hook calls",
			Got:  strconv.Itoa(n.hookCursor),
		})
	}

	switch children.kind {
	case childrenOne:
		in.visitChild(rc, walk, children.one, id)
	case childrenMany:
		for _, child := range children.many {
			in.visitChild(rc, walk, child, id)
		}
	}
}

// visitChild derives the child's id from the parent id and the child's
// identity, disambiguating siblings that share key and type with a
// positional suffix, then renders it.
func (in *Instance) visitChild(rc *RenderContext, walk *renderWalk, el Element, parentID string) {
	if el.IsZero() {
		return
	}
	id := parentID + "/" + el.identityName()
	if _, taken := walk.seen[id]; taken {
		base := id
		for i := 2; ; i++ {
			id = base + "_" + strconv.Itoa(i)
			if _, taken := walk.seen[id]; !taken {
				break
			}
		}
	}
	walk.seen[id] = struct{}{}
	delete(walk.unseen, id)
	in.visit(rc, walk, el, id, parentID)
}

// callComponent invokes the component function, recording the failing
// node id on panic for the frame error report.
func (in *Instance) callComponent(rc *RenderContext, n *node, el Element) Children {
	defer func() {
		if r := recover(); r != nil {
			if rc.failedNode == "" {
				rc.failedNode = n.id
			}
			panic(r)
		}
	}()
	return el.render(rc)
}

// collectUnseen tears down and deletes every node the walk did not visit,
// in sorted id order so teardown sequencing is deterministic.
func (in *Instance) collectUnseen(walk *renderWalk) {
	if len(walk.unseen) == 0 {
		return
	}
	ids := make([]string, 0, len(walk.unseen))
	for id := range walk.unseen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if n, ok := in.nodes[id]; ok {
			in.removeNode(n)
		}
	}
}

// removeNode executes a node's teardowns and drops it from the node map.
// Effect cleanups already run through the node registry are also detached
// from the instance's master registry so it does not accumulate entries
// for dead nodes.
func (in *Instance) removeNode(n *node) {
	n.teardowns.Execute()
	for _, s := range n.slots {
		if s.instCleanup != nil {
			s.instCleanup.Cancel()
			s.instCleanup = nil
		}
	}
	delete(in.nodes, n.id)
}
