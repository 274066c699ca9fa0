// Package errors provides structured error handling for the motion engine.
//
// Most malformed animation parameters are deliberately not errors: the
// engine clamps negative durations and delays, skips absent callbacks, and
// treats redundant kills as no-ops, because an animation glitch must never
// block the functional flow that requested it. The errors that remain —
// unsupported value kinds, unknown curve names, bad preset files — indicate
// programming or configuration mistakes at the call site and are reported
// through this package.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindValue indicates an accessor value type outside the supported set.
	KindValue
	// KindCurve indicates an unknown easing curve identifier.
	KindCurve
	// KindConfig indicates a preset configuration error.
	KindConfig
	// KindAudio indicates an audio playback or crossfade error.
	KindAudio
)

func (k ErrorKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindCurve:
		return "curve"
	case KindConfig:
		return "config"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// ErrUnsupportedType is reported when a tween is constructed over a value
// type outside the closed set of scalar, 2D vector, 3D vector, and color.
var ErrUnsupportedType = errors.New("unsupported value type")

// ErrUnknownCurve is reported when a curve identifier does not name a
// registered easing curve.
var ErrUnknownCurve = errors.New("unknown curve")

// Error represents a structured error in the motion engine.
type Error struct {
	// Op is the operation that failed (e.g., "tween.AnimateAny").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs a structured error.
func New(op string, kind ErrorKind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Newf constructs a structured error from a format string.
func Newf(op string, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
