package failure

import (
	"context"
	"encoding/json"
	"errors"
	"net"

	"github.com/mitchellh/mapstructure"
)

// FromStatus maps a completed HTTP status code to an Error. A 2xx status is
// not a failure and yields nil: the caller defers to payload mapping. The
// mapping is the same for the resume backend and the AI backend.
func FromStatus(code int) *Error {
	switch {
	case code >= 200 && code <= 299:
		return nil
	case code == 401:
		return New(Unauthorized)
	case code == 408:
		return New(RequestTimeout)
	case code == 409:
		return New(Conflict)
	case code == 413:
		return New(PayloadTooLarge)
	case code == 429:
		return New(TooManyRequests)
	case code >= 500 && code <= 599:
		return New(ServerError)
	default:
		return New(Unknown)
	}
}

// FromTransport classifies an error raised before a response completed:
// payload encode/decode failures become Serialization, exceeded deadlines
// become RequestTimeout, everything else (plain I/O, invalid arguments)
// becomes Unknown. Errors already produced by this package pass through
// unchanged so a classified failure is never reclassified.
func FromTransport(err error) *Error {
	if err == nil {
		return nil
	}

	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr
	}

	if isSerialization(err) {
		return Wrap(Serialization, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(RequestTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Wrap(RequestTimeout, err)
	}

	return Wrap(Unknown, err)
}

func isSerialization(err error) bool {
	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		marshalErr  *json.MarshalerError
		unsupported *json.UnsupportedTypeError
		decodeErr   *mapstructure.Error
	)

	switch {
	case errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.As(err, &marshalErr),
		errors.As(err, &unsupported),
		errors.As(err, &decodeErr):
		return true
	default:
		return false
	}
}
