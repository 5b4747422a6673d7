package api

import (
	"errors"
	"fmt"

	"resumecli/internal/models"
)

var (
	// ErrUnavailable means the backend could not be reached or did not
	// answer in time.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the request carried no valid token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the addressed resource does not exist. For
	// sections the caller treats this as "no data yet".
	ErrNotFound = errors.New("not found")
)

// ValidationError is a server-side rejection of a payload (4xx with a
// message). It is recoverable: the user fixes the input and retries.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request rejected (status %d)", e.Status)
	}
	return e.Message
}

// DecodeError means the backend answered 2xx but the payload did not
// match the expected shape. Malformed data is stopped here instead of
// propagating into client state.
type DecodeError struct {
	Section models.SectionName
	Reason  string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("decode %s: %s", e.Section, e.Reason)
	}
	return fmt.Sprintf("decode response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }
