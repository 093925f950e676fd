// Package events provides the per-surface pointer event registry. Handlers
// are registered with the hit-test shape, transform, and clip snapshot
// captured at registration time and are re-tested against those fixed
// snapshots at dispatch time.
package events

import (
	"fmt"

	"github.com/go-easel/easel/pkg/graphics"
)

// Type identifies a pointer event type.
type Type int

const (
	TypeClick Type = iota
	TypeDoubleClick
	TypeMouseDown
	TypeMouseUp
	TypeMouseMove
	TypeMouseOver
	TypeMouseOut
	TypeContextMenu
	TypeWheel

	// TypeLeave is the raw "pointer left the surface" signal. It is not
	// registered for directly: dispatching it forces every hover region
	// out, firing the affected mouseout handlers.
	TypeLeave
)

// String returns the event type's wire-style name.
func (t Type) String() string {
	switch t {
	case TypeClick:
		return "click"
	case TypeDoubleClick:
		return "dblclick"
	case TypeMouseDown:
		return "mousedown"
	case TypeMouseUp:
		return "mouseup"
	case TypeMouseMove:
		return "mousemove"
	case TypeMouseOver:
		return "mouseover"
	case TypeMouseOut:
		return "mouseout"
	case TypeContextMenu:
		return "contextmenu"
	case TypeWheel:
		return "wheel"
	case TypeLeave:
		return "leave"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Event is one pointer event. Inside a registry coordinates are logical
// pixels; hosts hand physical surface coordinates to an instance, which
// divides by the surface scale before dispatching here.
type Event struct {
	Type Type
	X    float64
	Y    float64

	// Button is the pressed button for down/up/click events, 0 for the
	// primary button.
	Button int

	// DeltaX and DeltaY carry scroll amounts for wheel events.
	DeltaX float64
	DeltaY float64
}

// Offset returns the event position as a point.
func (e Event) Offset() graphics.Offset {
	return graphics.Offset{X: e.X, Y: e.Y}
}

// Handler consumes a dispatched event.
type Handler func(Event)

// Registration describes one handler and the hit-test state captured when
// it was registered. Transform and Clips stay fixed for the registration's
// lifetime; dispatch never re-reads render state.
type Registration struct {
	Type    Type
	Handler Handler

	// Node is the owning render-tree node id, for error reports.
	Node string

	// Path is the hit region in its own coordinate space. A nil Path makes
	// every event of the type a hit (surface-wide delegated listening).
	Path     *graphics.Path
	FillRule graphics.FillRule

	// IncludeFill enables point-in-fill testing against Path.
	IncludeFill bool

	// StrokeWidth, when positive, enables point-in-stroke testing against
	// Path with that width in path-space units.
	StrokeWidth float64

	// Transform is the drawing transform captured at registration.
	Transform graphics.Matrix

	// Clips is the active clip-region snapshot captured at registration.
	// Empty means unclipped. A non-empty snapshot requires the pointer to
	// fall inside at least one entry.
	Clips []graphics.ClipEntry
}
