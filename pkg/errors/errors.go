// Package errors provides structured error handling for the Easel framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a mount-time configuration error, such as a
	// surface that cannot produce a drawing context.
	KindConfig
	// KindProtocol indicates a violation of the hook contract.
	KindProtocol
	// KindRender indicates a failure inside a component render.
	KindRender
	// KindHandler indicates a failure inside an event handler.
	KindHandler
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindProtocol:
		return "protocol"
	case KindRender:
		return "render"
	case KindHandler:
		return "handler"
	default:
		return "unknown"
	}
}

// EaselError represents a structured error in the Easel framework.
type EaselError struct {
	// Op is the operation that failed (e.g., "core.Mount").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EaselError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EaselError) Unwrap() error {
	return e.Err
}

// FrameError represents a recovered failure during a render frame or an
// event dispatch. Render failures abort the remaining frame; dispatch
// failures are isolated to the handler that raised them.
type FrameError struct {
	// Phase is "render" or "dispatch".
	Phase string
	// Node is the id of the node being visited, when known.
	Node string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the failure.
	StackTrace string
	// Timestamp is when the failure occurred.
	Timestamp time.Time
}

func (e *FrameError) Error() string {
	cause := e.Err
	if cause == nil && e.Recovered != nil {
		cause = fmt.Errorf("panic: %v", e.Recovered)
	}
	if e.Node != "" {
		return fmt.Sprintf("%s failed at node %q: %v", e.Phase, e.Node, cause)
	}
	return fmt.Sprintf("%s failed: %v", e.Phase, cause)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// HookError reports a violation of the hook contract: a hook called outside
// of a component render, or a component whose hook call sequence differs
// between two renders of the same node. Slot state is positional, so a
// changed sequence would silently corrupt it; Easel raises this instead.
type HookError struct {
	// Op is the hook that detected the violation (e.g., "core.UseState").
	Op string
	// Node is the id of the owning node ("" when called outside a render).
	Node string
	// Slot is the slot index at the point of failure.
	Slot int
	// Want describes the expected slot shape.
	Want string
	// Got describes what was found instead.
	Got string
}

func (e *HookError) Error() string {
	if e.Node == "" {
		return fmt.Sprintf("%s called outside of a component render", e.Op)
	}
	return fmt.Sprintf("%s at node %q slot %d: want %s, got %s", e.Op, e.Node, e.Slot, e.Want, e.Got)
}

// ErrorHandler receives errors reported by the Easel framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *EaselError)
	// HandleFrameError is called when a render frame or an event dispatch
	// recovers from a failure.
	HandleFrameError(err *FrameError)
}
