package errors

import "log/slog"

// SlogHandler is an ErrorHandler that forwards errors to a structured
// logger. Hosts that already route diagnostics through log/slog can install
// one with SetHandler to keep framework errors in the same stream.
type SlogHandler struct {
	// Logger receives the log records. Nil means slog.Default().
	Logger *slog.Logger
}

func (h *SlogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs an EaselError at error level.
func (h *SlogHandler) HandleError(err *EaselError) {
	if err == nil {
		return
	}
	h.logger().Error("easel error",
		"op", err.Op,
		"kind", err.Kind.String(),
		"err", err.Err,
	)
}

// HandleFrameError logs a FrameError at error level.
func (h *SlogHandler) HandleFrameError(err *FrameError) {
	if err == nil {
		return
	}
	attrs := []any{
		"phase", err.Phase,
		"node", err.Node,
	}
	if err.Err != nil {
		attrs = append(attrs, "err", err.Err)
	} else {
		attrs = append(attrs, "recovered", err.Recovered)
	}
	h.logger().Error("easel frame error", attrs...)
}
