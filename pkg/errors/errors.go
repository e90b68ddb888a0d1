// Package errors provides structured error handling for the slider widget.
//
// Errors returned synchronously by slider operations are *SliderError values
// wrapping one of the typed causes below. Failures that happen outside a
// caller's stack (click handlers, auto-advance ticks, fade effects) are sent
// to the global Handler via Report.
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
	// KindValidation indicates an invalid image descriptor or index.
	KindValidation
	// KindNotFound indicates a mount target that matched no element.
	KindNotFound
	// KindRender indicates a failure while building or updating the DOM.
	KindRender
	// KindAnimation indicates a visual effect that could not run.
	KindAnimation
	// KindConfig indicates a configuration load or decode failure.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not-found"
	case KindRender:
		return "render"
	case KindAnimation:
		return "animation"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors matched by the typed errors' Is methods.
var (
	ErrValidation = sentinel("validation failed")
	ErrNotFound   = sentinel("not found")
)

type sentinel string

func (s sentinel) Error() string { return string(s) }

// SliderError represents a structured error raised by a slider instance.
type SliderError struct {
	// Op is the operation that failed (e.g., "slider.Append").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Slider is the instance identifier, if known.
	Slider string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SliderError) Error() string {
	if e.Slider != "" {
		return fmt.Sprintf("%s [%s] slider=%s: %v", e.Op, e.Kind, e.Slider, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SliderError) Unwrap() error {
	return e.Err
}

// ValidationError reports an image descriptor, index or argument that
// cannot be rendered.
type ValidationError struct {
	// Field names the offending input (e.g., "src", "index", "images").
	Field string
	// Index is the image position involved, or -1.
	Index int
	// Reason describes the failure.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid %s at image %d: %s", e.Field, e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports a selector that resolved to nothing.
type NotFoundError struct {
	// Selector is the query that matched no element.
	Selector string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no element matches selector %q", e.Selector)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "slider.click").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported outside a caller's stack.
type Handler interface {
	// HandleError is called when an asynchronous operation fails.
	HandleError(err *SliderError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
