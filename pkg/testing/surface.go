package testing

import (
	"time"

	"github.com/go-easel/easel/pkg/core"
	"github.com/go-easel/easel/pkg/graphics"
)

// FrameInterval is how far Pump advances the clock per frame, matching a
// 60Hz host.
const FrameInterval = 16 * time.Millisecond

// TestSurface implements core.Surface without a real rendering backend.
// Drawing is recorded into a graphics.Recorder that resets at the start of
// every frame, frame callbacks queue until Pump runs them, and cursor
// changes land in a readable field. Layer surfaces created from it share
// its clock and schedule their frames into the same queue, so one Pump
// drives nested instances too.
type TestSurface struct {
	size   graphics.Size
	scale  float64
	rec    *graphics.Recorder
	clock  *FakeClock
	cursor string
	ctxErr error
	queue  []*scheduledFrame
	layers []*TestLayerSurface

	// sched owns the frame queue: the root surface itself, for layers
	// the surface they were created from.
	sched *TestSurface
}

type scheduledFrame struct {
	fn func(now time.Time)
}

// NewTestSurface creates a surface of the given logical size with scale 1
// and a fresh fake clock.
func NewTestSurface(width, height float64) *TestSurface {
	size := graphics.Size{Width: width, Height: height}
	s := &TestSurface{
		size:  size,
		scale: 1,
		rec:   graphics.NewRecorder(size),
		clock: NewFakeClock(),
	}
	s.sched = s
	return s
}

// Context returns the recording canvas, reset for a new frame.
func (s *TestSurface) Context() (graphics.Canvas, error) {
	if s.ctxErr != nil {
		return nil, s.ctxErr
	}
	s.rec.Reset()
	return s.rec, nil
}

// FailContext makes Context return err, for exercising mount failures.
// Pass nil to restore normal operation.
func (s *TestSurface) FailContext(err error) {
	s.ctxErr = err
}

// Size returns the logical surface size.
func (s *TestSurface) Size() graphics.Size {
	return s.size
}

// Scale returns the device pixel ratio.
func (s *TestSurface) Scale() float64 {
	return s.scale
}

// SetScale changes the device pixel ratio. Set it before mounting.
func (s *TestSurface) SetScale(scale float64) {
	s.scale = scale
}

// ScheduleFrame queues fn on the owning scheduler until the next Pump.
func (s *TestSurface) ScheduleFrame(fn func(now time.Time)) (cancel func()) {
	entry := &scheduledFrame{fn: fn}
	s.sched.queue = append(s.sched.queue, entry)
	return func() { entry.fn = nil }
}

// SetCursor records the cursor style.
func (s *TestSurface) SetCursor(name string) {
	s.cursor = name
}

// Cursor returns the last cursor style set, "" for the default.
func (s *TestSurface) Cursor() string {
	return s.cursor
}

// Clock returns the surface's fake clock.
func (s *TestSurface) Clock() *FakeClock {
	return s.clock
}

// CreateLayer allocates an offscreen recording surface sharing this
// surface's clock and frame queue.
func (s *TestSurface) CreateLayer(size graphics.Size) (core.LayerSurface, error) {
	l := &TestLayerSurface{}
	l.size = size
	l.scale = s.scale
	l.rec = graphics.NewRecorder(size)
	l.clock = s.clock
	l.sched = s.sched
	s.layers = append(s.layers, l)
	return l, nil
}

// Layers returns the layer surfaces created so far, in creation order.
func (s *TestSurface) Layers() []*TestLayerSurface {
	return s.layers
}

// Pump advances the clock one frame and runs the callbacks queued before
// the call. Callbacks scheduled while pumping wait for the next Pump. It
// returns how many callbacks ran.
func (s *TestSurface) Pump() int {
	target := s.sched
	queue := target.queue
	target.queue = nil
	s.clock.Advance(FrameInterval)
	now := s.clock.Now()
	ran := 0
	for _, entry := range queue {
		if entry.fn != nil {
			fn := entry.fn
			entry.fn = nil
			fn(now)
			ran++
		}
	}
	return ran
}

// Pending counts queued frame callbacks that have not been cancelled.
func (s *TestSurface) Pending() int {
	n := 0
	for _, entry := range s.sched.queue {
		if entry.fn != nil {
			n++
		}
	}
	return n
}

// Ops returns the serialized display operations of the last frame.
func (s *TestSurface) Ops() []string {
	return s.rec.List().Strings()
}

// List returns the last frame's display list.
func (s *TestSurface) List() *graphics.DisplayList {
	return s.rec.List()
}

// TestLayerSurface is an offscreen TestSurface created by CreateLayer. It
// records Resize and Compose calls for assertions.
type TestLayerSurface struct {
	TestSurface
	resizes  []graphics.Size
	composes []graphics.Offset
}

// Resize changes the layer's size, keeping the recorded history.
func (l *TestLayerSurface) Resize(size graphics.Size) {
	l.size = size
	l.resizes = append(l.resizes, size)
}

// Resizes returns every size passed to Resize.
func (l *TestLayerSurface) Resizes() []graphics.Size {
	return l.resizes
}

// Compose replays the layer's last rendered frame into dst at the offset.
func (l *TestLayerSurface) Compose(dst graphics.Canvas, at graphics.Offset) {
	l.composes = append(l.composes, at)
	dst.Save()
	dst.Translate(at.X, at.Y)
	l.rec.List().Paint(dst)
	dst.Restore()
}

// Composes returns every offset passed to Compose.
func (l *TestLayerSurface) Composes() []graphics.Offset {
	return l.composes
}
