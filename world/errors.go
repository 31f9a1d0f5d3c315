package world

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ObjectError reports a failure caused by one of the world's objects, usually
// a transform that cannot be inverted.
type ObjectError struct {
	// Index of the offending object in World.Objects.
	Index int

	// Op names what the world was doing with the object.
	Op string

	inner error
	frame xerrors.Frame
}

func newObjectError(index int, op string, inner error) *ObjectError {
	return &ObjectError{
		Index: index,
		Op:    op,
		inner: inner,
		frame: xerrors.Caller(1),
	}
}

func (e *ObjectError) Error() string {
	return fmt.Sprintf("object %d: while %s: %v", e.Index, e.Op, e.inner)
}

func (e *ObjectError) Format(f fmt.State, c rune) { // implements fmt.Formatter
	xerrors.FormatError(e, f, c)
}

func (e *ObjectError) FormatError(p xerrors.Printer) error { // implements xerrors.Formatter
	p.Printf("object %d: while %s", e.Index, e.Op)
	if p.Detail() {
		e.frame.Format(p)
	}
	return e.inner
}

func (e *ObjectError) Unwrap() error {
	return e.inner
}
