package api

import "errors"

var (
	// ErrUnavailable is returned when the backend is unreachable or timing
	// out, typically while the free-tier host cold-starts.
	ErrUnavailable = errors.New("server unreachable, it may be waking up")

	// ErrUnauthorized is returned on 401 after any token refresh attempt has
	// failed. The stored session is cleared before this is returned.
	ErrUnauthorized = errors.New("authentication failed, please log in again")

	// ErrForbidden is returned on 403.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	// ErrServer is returned on any 5xx response.
	ErrServer = errors.New("a server error occurred, please try again later")
)

// ValidationError carries the backend's `detail` message for a 4xx response,
// surfaced to the user verbatim.
type ValidationError struct {
	StatusCode int
	Detail     string
}

func (e *ValidationError) Error() string {
	return e.Detail
}
