package catalog

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when the client was never configured.
var ErrUnavailable = errors.New("catalog unavailable")

// StatusError captures a non-200 response from the catalog.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("catalog: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("catalog: unexpected status %d: %s", e.StatusCode, e.Body)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
