// Package errs defines the error kinds shared by every neurox package.
//
// Callers match kinds with errors.Is; the constructors below attach a
// description while keeping the sentinel in the chain:
//
//	out, err := a.MatMul(b)
//	if errors.Is(err, errs.ErrShapeMismatch) {
//	    // inspect shapes, retry with a transposed operand, ...
//	}
//
// Contract violations (out-of-range indexing, negative dimensions) are not
// represented here: they panic.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when operand shapes are incompatible.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidArgument is returned for out-of-domain arguments and malformed input data.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO wraps failures of the underlying reader or file system.
	ErrIO = errors.New("io error")

	// ErrIllegalState is returned when a layer is driven out of order,
	// e.g. Backward without a preceding Forward.
	ErrIllegalState = errors.New("illegal state")

	// ErrStateMismatch is returned when optimizer state no longer matches
	// the architecture it is asked to update.
	ErrStateMismatch = errors.New("optimizer state mismatch")

	// ErrOther is the catch-all kind.
	ErrOther = errors.New("other")
)

// ShapeMismatch returns an ErrShapeMismatch with a formatted description.
func ShapeMismatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrShapeMismatch, fmt.Sprintf(format, args...))
}

// InvalidArgument returns an ErrInvalidArgument with a formatted description.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IllegalState returns an ErrIllegalState with a formatted description.
func IllegalState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalState, fmt.Sprintf(format, args...))
}

// StateMismatch returns an ErrStateMismatch with a formatted description.
func StateMismatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStateMismatch, fmt.Sprintf(format, args...))
}

// Other returns an ErrOther with a formatted description.
func Other(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrOther, fmt.Sprintf(format, args...))
}

// IO wraps cause as an ErrIO. Both ErrIO and cause stay matchable.
// A nil cause yields nil.
func IO(cause error) error {
	if cause == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrIO, cause)
}

// Wrap prefixes err with a formatted context, keeping its kind matchable.
// A nil err yields nil.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
