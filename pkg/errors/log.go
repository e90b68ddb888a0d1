package errors

import "go.uber.org/zap"

// LogHandler is a Handler that writes errors to a zap logger.
type LogHandler struct {
	// Logger receives the entries. A nil Logger drops them.
	Logger *zap.Logger
	// Verbose adds stack traces to panic entries.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger.
func NewLogHandler(logger *zap.Logger) *LogHandler {
	return &LogHandler{Logger: logger}
}

// HandleError logs a SliderError at error level.
func (h *LogHandler) HandleError(err *SliderError) {
	if err == nil || h.Logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Slider != "" {
		fields = append(fields, zap.String("slider", err.Slider))
	}
	h.Logger.Error("slider error", fields...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil || h.Logger == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.Logger.Error("slider panic", fields...)
}
