// Package errs defines the tagged error taxonomy shared by the shape,
// array and graph packages.
package errs

import "fmt"

// Kind tags an Error with the condition that produced it.
type Kind int

const (
	// InvalidShape is returned when an elementwise op sees mismatched
	// shapes or a scalar op runs on a non-scalar.
	InvalidShape Kind = iota

	// InvalidLength is returned on a values-length mismatch (constant
	// construction, set-values, from-slice, or a fixed-rank extraction).
	InvalidLength

	// InvalidHardware is returned for a binary op across Arrays that are
	// not colocated on the same Hardware.
	InvalidHardware

	// InvalidNode is returned for an out-of-range step id or a cross-Graph
	// Grad call.
	InvalidNode

	// InvalidGraph is returned for arithmetic between Nodes that belong to
	// different Graphs.
	InvalidGraph

	// OutOfRange is returned for a shape axis index out of range.
	OutOfRange

	// NotSupported marks input the module cannot handle; ndconfig.Parse
	// returns it for a fixture document it cannot decode.
	NotSupported
)

// String renders the Kind's name for error messages and test failures.
func (k Kind) String() string {
	switch k {
	case InvalidShape:
		return "InvalidShape"
	case InvalidLength:
		return "InvalidLength"
	case InvalidHardware:
		return "InvalidHardware"
	case InvalidNode:
		return "InvalidNode"
	case InvalidGraph:
		return "InvalidGraph"
	case OutOfRange:
		return "OutOfRange"
	case NotSupported:
		return "NotSupported"
	default:
		return "Unknown"
	}
}

// Error is the tagged error value returned by every recoverable API in
// this module.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New builds an Error with no wrapped cause.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error that wraps cause, preserving it for errors.Unwrap
// and errors.Is/As.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, errs.New(errs.InvalidShape, "")).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == other.Kind
}
