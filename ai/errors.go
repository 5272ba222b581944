package ai

import "errors"

var (
	// ErrNoCredentials is returned when the inference service has no API key
	// configured. Callers treat it like any other analysis failure and fall
	// back to randomized estimates.
	ErrNoCredentials = errors.New("analyzer credentials not configured")

	// ErrEmptyReply is returned when the inference service reply carries no
	// usable message content.
	ErrEmptyReply = errors.New("no analysis content in reply")

	// ErrNoAnalysisJSON is returned when no JSON object can be located in
	// the reply text.
	ErrNoAnalysisJSON = errors.New("no JSON object found in analysis reply")
)
