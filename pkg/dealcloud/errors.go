package dealcloud

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrAuth              = errors.New("authentication failed")
	ErrValidation        = errors.New("validation failed")
	ErrHTTP              = errors.New("http request failed")
	ErrMalformedResponse = errors.New("malformed response")
)

// ValidationError identifies the request field that failed validation.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s=%v: %s", ErrValidation, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// HTTPError is returned when an endpoint answers with a non-2xx status.
// It matches ErrHTTP with errors.Is.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%v: %s %s: %s", ErrHTTP, e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("%v: %s %s: %s: %s", ErrHTTP, e.Method, e.URL, e.Status, e.Body)
}

func (e *HTTPError) Unwrap() error {
	return ErrHTTP
}
