package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrGenerationTimeout = errors.New("itinerary generation timed out")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrTripNotFound      = errors.New("trip not found")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrDatabaseError     = errors.New("database error")
)

// MalformedResponseError carries the raw model output so callers can
// surface it for diagnostics instead of swallowing it.
type MalformedResponseError struct {
	Reason string
	Raw    string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return ErrMalformedResponse }
