package serper

import "errors"

var (
	// ErrMissingAPIKey is returned when a request is attempted without
	// an API key configured.
	ErrMissingAPIKey = errors.New("serper API key is not configured")

	// ErrRequestFailed is returned for non-200 API responses.
	ErrRequestFailed = errors.New("serper request failed")
)
