// Package failure defines the error kinds shared by every toolkit package.
//
// Each kind is a sentinel error. Operations return a *Error that records the
// operation name, the offending input and an optional underlying cause, and
// that matches its kind through errors.Is.
//
// # Usage
//
//	if _, err := radix.Encode(-1, 10); errors.Is(err, failure.ErrNegativeValue) {
//	    // handle
//	}
package failure
