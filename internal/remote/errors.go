package remote

import (
	"errors"
	"fmt"
)

// NetworkError reports a remote call that could not complete or came back
// with a non-success status. It is always recoverable: callers degrade
// (seed fallback, default image, aborted mutation) instead of crashing.
type NetworkError struct {
	Op         string // logical operation, e.g. "fetch campaigns"
	StatusCode int    // HTTP status, 0 when the transport itself failed
	Message    string // server-provided error message, if any
	Err        error  // underlying transport error, if any
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("remote %s: %s (status %d)", e.Op, e.Message, e.StatusCode)
	default:
		return fmt.Sprintf("remote %s: status %d", e.Op, e.StatusCode)
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is (or wraps) a NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
