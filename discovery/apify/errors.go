package apify

import "errors"

var (
	// ErrMissingToken is returned when an actor run is attempted without
	// an API token configured.
	ErrMissingToken = errors.New("apify token is not configured")

	// ErrRunFailed is returned for non-2xx actor run responses.
	ErrRunFailed = errors.New("apify actor run failed")
)
