package lang

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind int

const (
	// Internal is an invariant violation; it should be unreachable.
	Internal ErrorKind = iota
	TypeError
	OutOfRange
	CapacityExceeded
	DataAccess
	XmlError
	Arity
	Cancelled
)

var errorKindNames = map[ErrorKind]string{
	Internal:         "Internal",
	TypeError:        "TypeError",
	OutOfRange:       "OutOfRange",
	CapacityExceeded: "CapacityExceeded",
	DataAccess:       "DataAccess",
	XmlError:         "XmlError",
	Arity:            "Arity",
	Cancelled:        "Cancelled",
}

func (k ErrorKind) String() string {
	name, ok := errorKindNames[k]
	if !ok {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return name
}

// Recoverable reports whether user code is expected to handle errors of
// this kind. Everything else terminates the current invocation.
func Recoverable(k ErrorKind) bool {
	return k == XmlError || k == DataAccess
}

// Error is the structured record surfaced to the interpreter.
type Error struct {
	Kind      ErrorKind
	Operation string
	Message   string
	// Err is the underlying cause, if any.
	Err error
}

var _ error = &Error{}

func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Operation == "" {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Operation, msg)
}

// Cause lets errors.Cause see through to the underlying failure.
func (e *Error) Cause() error { return e.Err }

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError attributes cause to operation. If cause is already an *Error,
// its kind wins over kind.
func WrapError(kind ErrorKind, operation string, cause error) *Error {
	if cause == nil {
		return &Error{Kind: kind, Operation: operation, Message: "unknown failure"}
	}
	if existing, ok := asError(cause); ok {
		kind = existing.Kind
	}
	return &Error{
		Kind:      kind,
		Operation: operation,
		Err:       errors.WithStack(cause),
	}
}

// KindOf returns the kind of the first *Error on err's cause chain, or
// Internal if there is none.
func KindOf(err error) ErrorKind {
	if e, ok := asError(err); ok {
		return e.Kind
	}
	return Internal
}

type causer interface {
	Cause() error
}

func asError(err error) (*Error, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e, true
		}
		c, ok := err.(causer)
		if !ok {
			return nil, false
		}
		err = c.Cause()
	}
	return nil, false
}

func outOfRange(index int64, size int64) *Error {
	return NewError(OutOfRange, "array index out of range: index: %d, size: %d", index, size)
}

func typeMismatch(expected Type, v Value) *Error {
	got := "nil"
	if v != nil {
		got = v.Type().String()
	}
	return NewError(TypeError, "expected a value of type %s; got %s", expected, got)
}
