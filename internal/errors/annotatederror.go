// Package errors provides errors that can be annotated with [slog.Attr] and
// that remember where they were created, so that log output points at the
// wrap site instead of somewhere inside this package.
//
// It re-exports the parts of the standard errors package that callers need,
// so importing both is never necessary.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// annotatedError wraps a cause with a message, optional slog annotations and
// the source location of the Wrap call.
type annotatedError struct {
	msg         string
	cause       error
	annotations []slog.Attr
	source      string
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// NewSentinel creates an error meant to be declared as a package-level
// sentinel and matched with [Is]. It carries no source location.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg}
}

// Wrap annotates err with a message and optional [slog.Attr]. The location of
// the Wrap call is recorded for [SlogError]. A nil err is allowed and yields
// an error with only the message.
func Wrap(err error, msg string, annotations ...slog.Attr) error {
	return &annotatedError{
		msg:         msg,
		cause:       err,
		annotations: annotations,
		source:      caller(1),
	}
}

// DecoratePanic converts a recovered panic value into an error annotated with
// the panic site. Returns nil when recovered is nil.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		msg:    fmt.Sprintf("panic: %v", recovered),
		source: panicSite(),
	}
}

// SlogError renders err as a structured "error" attribute containing the
// message, the source of the outermost annotation and all annotations
// gathered from the error tree. Safe to call with nil.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	var (
		annotations []slog.Attr
		source      string
	)
	collect(err, &annotations, &source)

	attrs := []slog.Attr{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}
	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// collect walks the error tree gathering annotations and the first recorded
// source location.
func collect(err error, annotations *[]slog.Attr, source *string) {
	if err == nil {
		return
	}
	if ae, ok := err.(*annotatedError); ok {
		*annotations = append(*annotations, ae.annotations...)
		if *source == "" && ae.source != "" {
			*source = ae.source
		}
	}
	switch unwrapped := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range unwrapped.Unwrap() {
			collect(e, annotations, source)
		}
	case interface{ Unwrap() error }:
		collect(unwrapped.Unwrap(), annotations, source)
	}
}

// caller returns "file.go:123" for the caller skip+1 frames up the stack.
func caller(skip int) string {
	pc := make([]uintptr, 1)
	if runtime.Callers(skip+2, pc) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pc).Next()
	return frameSource(frame)
}

// panicSite walks past the runtime panic machinery and this package to find
// the frame that actually panicked.
func panicSite() string {
	const maxDepth = 32
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") &&
			!strings.Contains(frame.File, "internal/errors") {
			return frameSource(frame)
		}
		if !more {
			return ""
		}
	}
}

func frameSource(frame runtime.Frame) string {
	file := frame.File
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		file = file[idx+1:]
	}
	return fmt.Sprintf("%s:%d", file, frame.Line)
}

// New returns an error with the given text. See [stderrors.New].
func New(text string) error { return stderrors.New(text) }

// Is reports whether any error in err's tree matches target. See [stderrors.Is].
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's tree matching target. See [stderrors.As].
func As(err error, target any) bool { return stderrors.As(err, target) }

// Unwrap returns the result of calling Unwrap on err. See [stderrors.Unwrap].
func Unwrap(err error) error { return stderrors.Unwrap(err) }

// Join wraps the given errors into one. See [stderrors.Join].
func Join(errs ...error) error { return stderrors.Join(errs...) }
