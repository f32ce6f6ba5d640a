// Package failure defines the closed set of error kinds shared by every
// remote operation, and the classification of HTTP statuses and transport
// errors into that set.
package failure

import (
	"errors"
	"fmt"
)

// Kind is one of the closed failure categories. Every fallible operation in
// the application reports exactly one Kind; no package defines its own.
type Kind int

const (
	// Unknown covers unmapped status codes, plain I/O failures and invalid
	// arguments reaching the transport layer.
	Unknown Kind = iota
	RequestTimeout
	Unauthorized
	Conflict
	PayloadTooLarge
	TooManyRequests
	ServerError
	// Serialization marks a payload that could not be encoded or decoded.
	Serialization
	// Transformation marks a decoded payload that could not be validated
	// into a domain object. It is the only non-network kind.
	Transformation
)

func (k Kind) String() string {
	switch k {
	case RequestTimeout:
		return "request timeout"
	case Unauthorized:
		return "unauthorized"
	case Conflict:
		return "conflict"
	case PayloadTooLarge:
		return "payload too large"
	case TooManyRequests:
		return "too many requests"
	case ServerError:
		return "server error"
	case Serialization:
		return "serialization error"
	case Transformation:
		return "transformation failed"
	default:
		return "unknown error"
	}
}

// Error is the only error type crossing a gateway's public contract. Two
// Errors match (via errors.Is) when they carry the same Kind, so tests and
// callers can assert exact expected outcomes regardless of the wrapped cause.
type Error struct {
	Kind  Kind
	cause error
}

// New returns an Error of the given kind with no underlying cause.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Wrap returns an Error of the given kind keeping the underlying cause for
// logging. The cause never takes part in equality checks.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.cause)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches by Kind only.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// KindOf extracts the Kind from an error produced by this package. A nil
// error and a foreign error type both report ok=false.
func KindOf(err error) (Kind, bool) {
	var ferr *Error
	if !errors.As(err, &ferr) {
		return Unknown, false
	}
	return ferr.Kind, true
}
