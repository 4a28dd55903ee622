package apiclient

import (
	"errors"
	"fmt"
)

// ErrUnavailable wraps transport failures: timeouts, refused connections,
// DNS errors. No HTTP status was received.
var ErrUnavailable = errors.New("api unavailable")

// StatusError is returned when the API answered with an unexpected status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}
