package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedDataPoint  = errors.New("malformed data point")
	ErrMalformedBatch      = errors.New("malformed data point batch")
	ErrEmptyTarget         = errors.New("target is required")
	ErrSourceNotConfigured = errors.New("graphite source not configured")
	ErrVerdictNotFound     = errors.New("verdict not found")
	ErrResponseTooLarge    = errors.New("upstream response too large")
)

// UpstreamError is returned when graphite (or the proxy in front of it) answers with a non 2xx status.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

func NewUpstreamError(statusCode int, body string) error {
	return &UpstreamError{
		StatusCode: statusCode,
		Body:       body,
	}
}
