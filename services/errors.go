package services

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight is returned when a submit arrives while a previous
// analysis is still outstanding.
var ErrSubmissionInFlight = errors.New("an analysis is already in flight")

// NetworkError means the scoring webhook could not be reached at all
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling analyzer: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError means the webhook answered but with a non-success status
// or a body that could not be decoded
type ProtocolError struct {
	StatusCode int
	Reason     string
}

func (e *ProtocolError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("analyzer protocol error: status %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("analyzer protocol error: %s", e.Reason)
}

// ValidationError reports malformed local input before any analyzer runs
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
