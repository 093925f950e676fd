package core

import (
	"time"

	"github.com/go-easel/easel/pkg/graphics"
)

// Surface is the host-provided drawing target an instance mounts onto.
// The core treats it as opaque: it never rasterizes, it only records
// drawing commands through the canvas and relies on the host for frame
// timing, cursor styling, and layer allocation.
//
// All methods are called from the instance's render goroutine.
type Surface interface {
	// Context returns the surface's drawing canvas. An error means the
	// surface cannot produce one, which makes mounting fail.
	Context() (graphics.Canvas, error)

	// Size returns the surface size in logical pixels.
	Size() graphics.Size

	// Scale returns the device pixel ratio: the factor between physical
	// surface pixels and logical pixels. Pointer coordinates arrive in
	// physical pixels and are divided by this before hit testing.
	Scale() float64

	// ScheduleFrame queues fn to run at the host's next paint opportunity
	// and returns a cancel function. The host invokes fn at most once.
	ScheduleFrame(fn func(now time.Time)) (cancel func())

	// SetCursor applies a pointer cursor style, "" meaning the default.
	SetCursor(name string)

	// CreateLayer allocates an offscreen surface of the given size for a
	// nested instance. The returned surface schedules its frames through
	// this surface's scheduler.
	CreateLayer(size graphics.Size) (LayerSurface, error)
}

// LayerSurface is an offscreen surface owned by a layer node. Its recorded
// output is composited into the parent surface on every parent render.
type LayerSurface interface {
	Surface

	// Resize changes the layer's size. The next render re-records at the
	// new size.
	Resize(size graphics.Size)

	// Compose draws the layer's last rendered frame into dst with the
	// layer's origin at the given offset.
	Compose(dst graphics.Canvas, at graphics.Offset)
}
