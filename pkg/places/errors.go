package places

import (
	"fmt"
	"time"
)

// MissingFieldError indicates a required request field was left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("places: required field %q is missing", e.Field)
}

// OutOfRangeError indicates a request field lies outside its allowed range.
type OutOfRangeError struct {
	Field string
	Min   float64
	Max   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("places: field %q must be between %v and %v", e.Field, e.Min, e.Max)
}

// ConflictingFieldsError indicates two request fields that cannot be set
// together.
type ConflictingFieldsError struct {
	Field    string
	Conflict string
}

func (e *ConflictingFieldsError) Error() string {
	return fmt.Sprintf("places: field %q must be unset with %s", e.Field, e.Conflict)
}

// APIError represents a non-200 HTTP response from the Places API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Places API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// StatusError represents a Places API response whose status field reports a
// failure (anything other than OK or ZERO_RESULTS).
type StatusError struct {
	Status   string
	Message  string
	Endpoint string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Places API status %s: %s (endpoint: %s)", e.Status, e.Message, e.Endpoint)
}

// RateLimitError represents a rate limit error.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("Places rate limit exceeded, retry after %v", e.RetryAfter)
}
