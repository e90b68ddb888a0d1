package errors

import (
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// installed wraps the process-wide handler so it can be swapped atomically.
type installed struct{ h Handler }

var current atomic.Pointer[installed]

func init() {
	current.Store(&installed{h: stderrHandler()})
}

// stderrHandler logs warnings and above to stderr in console format.
func stderrHandler() *LogHandler {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zapcore.WarnLevel,
	)
	return &LogHandler{Logger: zap.New(core)}
}

// CurrentHandler returns the handler that receives reported errors.
func CurrentHandler() Handler {
	return current.Load().h
}

// SetHandler installs h and returns the handler it replaces. A nil h
// installs a fresh stderr LogHandler.
func SetHandler(h Handler) Handler {
	if h == nil {
		h = stderrHandler()
	}
	return current.Swap(&installed{h: h}).h
}

// Report hands err to the current handler, stamping it with the current
// time unless it already carries one.
func Report(err *SliderError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	CurrentHandler().HandleError(err)
}

// ReportError reports err, wrapping it in a SliderError unless it already is one.
func ReportError(op string, kind ErrorKind, slider string, err error) {
	if err == nil {
		return
	}
	se, ok := err.(*SliderError)
	if !ok {
		se = &SliderError{Op: op, Kind: kind, Slider: slider, Err: err}
	}
	Report(se)
}

// ReportPanic hands a recovered panic to the current handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	CurrentHandler().HandlePanic(err)
}

// Recover reports a panic in progress and stops it from unwinding further.
// It must be deferred directly:
//
//	defer errors.Recover("slider.click")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack returns the calling goroutine's stack trace.
func CaptureStack() string {
	return string(debug.Stack())
}
