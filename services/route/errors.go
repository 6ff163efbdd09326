package route

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRoute is returned when the directions service answers without any route
	ErrNoRoute = errors.New("no routes found")

	// ErrInvalidRequest is returned when the directions request cannot be built
	ErrInvalidRequest = errors.New("invalid directions request")
)

// TransportError reports a non-2xx answer from the directions service
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("directions request failed with status %d", e.StatusCode)
}

// Reasons carried by DecodeError
const (
	DecodeReasonMissing     = "no overview polyline data available"
	DecodeReasonUnavailable = "geometry encoding library not available"
	DecodeReasonInvalid     = "invalid encoded polyline"
	DecodeReasonEmpty       = "no points found in the decoded polyline"
)

// DecodeError reports why an encoded polyline produced no coordinates
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode polyline: %s: %v", e.Reason, e.Err)
	}
	return "decode polyline: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
