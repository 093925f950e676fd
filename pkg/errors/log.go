package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleError logs an EaselError to stderr.
func (h *LogHandler) HandleError(err *EaselError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[easel error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(os.Stderr, "[easel error] %s: %v\n", err.Op, err.Err)
	}
}

// HandleFrameError logs a FrameError to stderr.
func (h *LogHandler) HandleFrameError(err *FrameError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[easel %s error] %s\n", err.Phase, err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
