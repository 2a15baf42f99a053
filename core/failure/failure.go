package failure

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrInvalidFormat reports input that cannot be coerced to the requested type or token set.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnsupportedRadix reports a base outside [2,36].
	ErrUnsupportedRadix = errors.New("unsupported radix")
	// ErrNegativeValue reports a negative value where only non-negative values are valid.
	ErrNegativeValue = errors.New("negative value")
	// ErrAddressFamilyMismatch reports a comparison between addresses of different families.
	ErrAddressFamilyMismatch = errors.New("address family mismatch")
	// ErrBounds reports a range whose lower bound exceeds its upper bound.
	ErrBounds = errors.New("invalid bounds")
	// ErrSerialization reports a value that cannot be encoded in the requested format.
	ErrSerialization = errors.New("serialization failed")
	// ErrDeserialization reports text or bytes that cannot be decoded in the requested format.
	ErrDeserialization = errors.New("deserialization failed")
	// ErrRecursionLimit reports an object graph nested deeper than the allowed limit.
	ErrRecursionLimit = errors.New("recursion limit exceeded")
)

// Error is a failure of a single toolkit operation.
type Error struct {
	// Kind is one of the sentinel errors of this package.
	Kind error
	// Op names the operation that failed, e.g. "radix.Encode".
	Op string
	// Input is a printable form of the offending input, if any.
	Input string
	// Err is the underlying cause, if any.
	Err error
}

// New builds an Error of the given kind.
func New(kind error, op, input string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Input: input, Err: cause}
}

// Newf builds an Error whose cause is a formatted message.
func Newf(kind error, op, input, format string, args ...any) *Error {
	return New(kind, op, input, fmt.Errorf(format, args...))
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.Error()
	if e.Input != "" {
		msg += fmt.Sprintf(" %q", e.Input)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the sentinel kind carried by err, or nil if err is not a toolkit failure.
func KindOf(err error) error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return nil
}
