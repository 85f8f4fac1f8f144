package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrUnauthenticated = fmt.Errorf("not logged in")
	ErrUnauthorized    = fmt.Errorf("unauthorized")
	ErrLoginFailed     = fmt.Errorf("login failed")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrValidation      = fmt.Errorf("validation failed")
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
)

// StatusError carries a non-2xx HTTP response: the status code and the raw
// body text (best-effort, empty when unreadable). It wraps [ErrAPIRequest]
// so callers can classify with errors.Is.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed (%d)", e.Status)
	}
	return e.Body
}

func (e *StatusError) Unwrap() error { return ErrAPIRequest }

// NewStatusError creates a [StatusError] for the given status and body text.
func NewStatusError(status int, body string) *StatusError {
	return &StatusError{Status: status, Body: body}
}
