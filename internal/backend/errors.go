package backend

import (
	"errors"
	"fmt"
)

// ErrUnavailable classifies transport-level failures (connection refused,
// timeout, malformed body). Read handlers with a mock fallback substitute
// synthetic data on this error class; mutation handlers surface it verbatim.
var ErrUnavailable = errors.New("backend unavailable")

// ErrNotConfigured is returned when no backend URL is set.
var ErrNotConfigured = errors.New("backend not configured")

// APIError is an explicit failure envelope from the backend: the call went
// through, the backend said no. Carries the upstream status and message so
// proxy handlers can pass both along untouched.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.StatusCode, e.Message)
}

// IsUnavailable reports whether err is a transport-level failure rather than
// an explicit backend rejection.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable) || errors.Is(err, ErrNotConfigured)
}

// AsAPIError unwraps an explicit backend rejection, if err is one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
