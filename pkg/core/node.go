package core

import "fmt"

// slotKind tags the hook variant stored in a slot. Slots are positionally
// addressed; the kind at each position must match across renders.
type slotKind int

const (
	slotRef slotKind = iota
	slotState
	slotMemo
	slotWhenChanged
	slotEvent
)

// String returns the hook name the kind belongs to.
func (k slotKind) String() string {
	switch k {
	case slotRef:
		return "ref"
	case slotState:
		return "state"
	case slotMemo:
		return "memo"
	case slotWhenChanged:
		return "whenChanged"
	case slotEvent:
		return "event"
	default:
		return fmt.Sprintf("slotKind(%d)", int(k))
	}
}

// slot is one positional hook record. The fields in use depend on kind:
// ref and state keep value, memo keeps value and deps, whenChanged keeps
// deps and the teardown bookkeeping, event keeps the removal callbacks.
type slot struct {
	kind  slotKind
	value any
	deps  []any

	// teardown is the once-guarded cleanup returned by the last
	// whenChanged effect run, nil when the effect returned none.
	teardown func()

	// nodeCleanup and instCleanup are the teardown's registrations with
	// the owning node's and the instance's registries. Both are canceled
	// before the teardown is invoked on a dependency change.
	nodeCleanup *Cleanup
	instCleanup *Cleanup

	// remove deregisters an event slot's handler from the event registry.
	remove func()
}

// node is the persistent record for one instantiated position in the
// render tree. It survives across renders under a stable id; the element
// occupying it is replaced every render.
type node struct {
	id       string
	parentID string
	element  Element

	slots      []*slot
	hookCursor int

	// mounting is true during the render pass that created the node.
	// Hooks consult it to decide between pushing a fresh slot and reading
	// an existing one.
	mounting bool

	teardowns *TeardownRegistry
}

func newNode(id, parentID string) *node {
	return &node{
		id:        id,
		parentID:  parentID,
		teardowns: NewTeardownRegistry(),
	}
}
