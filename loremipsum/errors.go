package loremipsum

import (
	"errors"
	"fmt"
)

// Error kinds returned by the generator pipeline
var (
	// ErrInvalidParameter indicates a negative paragraph count
	ErrInvalidParameter = errors.New("number of paragraphs must not be negative")
	// ErrInvalidURL indicates the request URL could not be built
	ErrInvalidURL = errors.New("invalid request URL")
	// ErrNetwork indicates the request could not be completed
	ErrNetwork = errors.New("network error")
	// ErrDecoding indicates the response body did not have the expected shape
	ErrDecoding = errors.New("failed to decode response")
)

// Error pairs one of the error kinds with the underlying cause.
//
// Both the kind and the cause are reachable with errors.Is and errors.As,
// so callers can switch on the kind while logs keep the original failure.
type Error struct {
	Kind error
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the kind and the cause
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind of the outermost *Error in err's chain, or nil
// when err did not originate from this package.
func KindOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return nil
}

// StatusError is returned by Client when the API answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api-ninjas request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("api-ninjas request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized checks if the status indicates a rejected API key
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// toNetworkError maps any failure from the HTTP layer onto ErrNetwork.
// The original failure stays in the chain for diagnostics.
func toNetworkError(err error) error {
	return &Error{Kind: ErrNetwork, Err: err}
}
