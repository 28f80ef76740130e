package llm

import (
	"errors"
	"fmt"
)

// CompletionError is returned when the completion endpoint answers with a
// non-success HTTP status. The caller owns retry policy; providers never retry.
type CompletionError struct {
	StatusCode int
	Body       string
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion error: status %d, body: %s", e.StatusCode, e.Body)
}

// TransportError is returned when the request never produced an HTTP response
// (connection refused, DNS failure, context cancelled mid-flight).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("completion transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsCompletionError reports whether err wraps a CompletionError.
func IsCompletionError(err error) bool {
	var ce *CompletionError
	return errors.As(err, &ce)
}

// IsTransportError reports whether err wraps a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
