package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-easel/easel/pkg/core"
	"github.com/go-easel/easel/pkg/events"
)

const (
	// DefaultWidth is the default logical width for the test surface.
	DefaultWidth = 400
	// DefaultHeight is the default logical height for the test surface.
	DefaultHeight = 300
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: instance did not settle")

// Tester mounts component trees on a TestSurface and drives frames and
// pointer input deterministically.
type Tester struct {
	surface *TestSurface
	inst    *core.Instance
}

// NewTester creates a tester with a default-sized surface, registered for
// cleanup when the test ends.
func NewTester(t *testing.T) *Tester {
	tester := &Tester{surface: NewTestSurface(DefaultWidth, DefaultHeight)}
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the current tree. It runs automatically at test end.
func (t *Tester) Cleanup() {
	if t.inst != nil {
		t.inst.Unmount()
		t.inst = nil
	}
}

// Surface returns the underlying test surface.
func (t *Tester) Surface() *TestSurface {
	return t.surface
}

// Clock returns the fake clock driving frame timestamps.
func (t *Tester) Clock() *FakeClock {
	return t.surface.Clock()
}

// Instance returns the mounted instance, nil before Mount.
func (t *Tester) Instance() *core.Instance {
	return t.inst
}

// Mount mounts root on the test surface, replacing any previous tree, and
// pumps the initial frame.
func (t *Tester) Mount(root core.Element) error {
	if t.inst != nil {
		t.inst.Unmount()
		t.inst = nil
	}
	inst, err := core.Mount(t.surface, root)
	if err != nil {
		return err
	}
	t.inst = inst
	t.Pump()
	return nil
}

// Pump runs the currently queued frames, advancing the clock one frame
// interval. It returns how many frame callbacks ran.
func (t *Tester) Pump() int {
	return t.surface.Pump()
}

// PumpAndSettle pumps frames until none are pending or the timeout (in
// simulated time) elapses. Trees that request a render on every frame
// never settle and return ErrSettleTimeout.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for {
		t.surface.Pump()
		if t.surface.Pending() == 0 {
			return nil
		}
		elapsed += FrameInterval
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
	}
}

// Ops returns the display operations of the last pumped frame.
func (t *Tester) Ops() []string {
	return t.surface.Ops()
}

// Cursor returns the cursor style currently set on the surface.
func (t *Tester) Cursor() string {
	return t.surface.Cursor()
}

// Dispatch delivers a raw pointer event to the mounted instance.
// Coordinates are physical surface pixels.
func (t *Tester) Dispatch(ev events.Event) {
	if t.inst == nil {
		return
	}
	t.inst.DispatchPointer(ev)
}

// Click dispatches a click at (x, y).
func (t *Tester) Click(x, y float64) {
	t.Dispatch(events.Event{Type: events.TypeClick, X: x, Y: y})
}

// DoubleClick dispatches a double click at (x, y).
func (t *Tester) DoubleClick(x, y float64) {
	t.Dispatch(events.Event{Type: events.TypeDoubleClick, X: x, Y: y})
}

// Press dispatches a mouse down at (x, y).
func (t *Tester) Press(x, y float64) {
	t.Dispatch(events.Event{Type: events.TypeMouseDown, X: x, Y: y})
}

// Release dispatches a mouse up at (x, y).
func (t *Tester) Release(x, y float64) {
	t.Dispatch(events.Event{Type: events.TypeMouseUp, X: x, Y: y})
}

// MoveTo dispatches a pointer move to (x, y), which also drives
// mouseover/mouseout synthesis and cursor claims.
func (t *Tester) MoveTo(x, y float64) {
	t.Dispatch(events.Event{Type: events.TypeMouseMove, X: x, Y: y})
}

// Wheel dispatches a wheel event at (x, y) with the given deltas.
func (t *Tester) Wheel(x, y, deltaX, deltaY float64) {
	t.Dispatch(events.Event{Type: events.TypeWheel, X: x, Y: y, DeltaX: deltaX, DeltaY: deltaY})
}

// Leave dispatches a pointer-left-surface signal, forcing every hover
// region out.
func (t *Tester) Leave() {
	t.Dispatch(events.Event{Type: events.TypeLeave})
}
