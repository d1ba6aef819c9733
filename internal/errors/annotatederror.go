// Package errors provides error annotation with slog attributes and source locations.
//
// It re-exports the standard library helpers so callers only need one errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
)

// AnnotatedError carries a message, optional slog attributes, and the
// program counter of the call site that created it.
type AnnotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	pc    uintptr
}

// Error implements the error interface.
func (e *AnnotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap exposes the wrapped error for errors.Is and errors.As.
func (e *AnnotatedError) Unwrap() error {
	return e.cause
}

// callerPC returns the program counter skipping the given number of frames
// on top of the frames internal to this package.
func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	// +2 skips runtime.Callers and callerPC itself.
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return 0
	}
	return pcs[0]
}

// New creates an error annotated with the caller's source location and
// optional slog attributes.
func New(msg string, attrs ...slog.Attr) error {
	return &AnnotatedError{msg: msg, attrs: attrs, pc: callerPC(1)}
}

// NewSentinel creates an error meant to be declared as a package-level
// sentinel and matched with Is. It records the declaration site.
func NewSentinel(msg string) error {
	return &AnnotatedError{msg: msg, pc: callerPC(1)}
}

// Wrap annotates err with a message and optional slog attributes. The
// wrapping call site becomes the error's source location.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &AnnotatedError{msg: msg, cause: err, attrs: attrs, pc: callerPC(1)}
}

// DecoratePanic converts a recovered panic value into an error carrying the
// stack trace as an annotation. Returns nil when recovered is nil.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return Wrap(nil, fmt.Sprintf("panic: %v", recovered),
		slog.String("stack", string(debug.Stack())))
}

// SlogError renders err as a structured slog attribute. It includes the
// message, any attributes attached along the wrap chain, and the source
// location of the outermost annotated error.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	attrs := []any{slog.String("message", err.Error())}

	var annotations []any
	var pc uintptr
	for unwrapped := err; unwrapped != nil; unwrapped = Unwrap(unwrapped) {
		var annotated *AnnotatedError
		if errors.As(unwrapped, &annotated) {
			if pc == 0 {
				pc = annotated.pc
			}
			for _, attr := range annotated.attrs {
				annotations = append(annotations, attr)
			}
			// As may have jumped deeper than one level.
			unwrapped = annotated
		}
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	if pc != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
		attrs = append(attrs, slog.String("source",
			fmt.Sprintf("%s:%d", frame.File, frame.Line)))
	}

	return slog.Group("error", attrs...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
