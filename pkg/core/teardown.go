package core

// Cleanup is a handle to one registered teardown callback.
type Cleanup struct {
	fn      func()
	removed bool
}

// Cancel removes the callback from its registry without running it.
// Canceling twice, or after the registry executed, is a no-op.
func (c *Cleanup) Cancel() {
	c.removed = true
	c.fn = nil
}

// TeardownRegistry is a cancelable bag of cleanup callbacks with a closed
// terminal state. Nodes own one for their effect teardowns and event
// deregistrations; every node registry follows the instance's master
// registry so destroying the instance cascades.
//
// A registry is confined to its instance's render goroutine.
type TeardownRegistry struct {
	items  []*Cleanup
	closed bool

	// parentLink is this registry's entry in a followed parent, removed
	// when this registry executes first.
	parentLink *Cleanup
}

// NewTeardownRegistry creates an open registry.
func NewTeardownRegistry() *TeardownRegistry {
	return &TeardownRegistry{}
}

// Add registers a cleanup callback and returns its handle. If the registry
// is already closed the callback runs immediately and the returned handle
// is inert, so no work can leak past destruction.
func (r *TeardownRegistry) Add(fn func()) *Cleanup {
	if fn == nil {
		return &Cleanup{removed: true}
	}
	if r.closed {
		fn()
		return &Cleanup{removed: true}
	}
	c := &Cleanup{fn: fn}
	r.items = append(r.items, c)
	return c
}

// Closed reports whether Execute has run.
func (r *TeardownRegistry) Closed() bool {
	return r.closed
}

// Execute transitions to closed and runs all pending callbacks in
// insertion order, exactly once. Later calls are no-ops. Callbacks added
// while executing run immediately via the closed-state Add path.
func (r *TeardownRegistry) Execute() {
	if r.closed {
		return
	}
	r.closed = true
	if r.parentLink != nil {
		r.parentLink.Cancel()
		r.parentLink = nil
	}
	items := r.items
	r.items = nil
	for _, c := range items {
		if c.removed || c.fn == nil {
			continue
		}
		fn := c.fn
		c.fn = nil
		fn()
	}
}

// Follow wires this registry to execute automatically when parent does.
// If this registry executes first it unlinks itself from the parent.
// Following a second parent replaces the previous linkage.
func (r *TeardownRegistry) Follow(parent *TeardownRegistry) {
	if r.parentLink != nil {
		r.parentLink.Cancel()
		r.parentLink = nil
	}
	if r.closed || parent == nil {
		return
	}
	r.parentLink = parent.Add(r.Execute)
}
