// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import "errors"

var (
	// ErrSearchRepositoryRequired is returned when no search repository is provided.
	ErrSearchRepositoryRequired = errors.New("search repository is required")

	// ErrImageRepositoryRequired is returned when no image repository is provided.
	ErrImageRepositoryRequired = errors.New("image repository is required")

	// ErrSourcesRequired is returned when no discovery sources are provided.
	ErrSourcesRequired = errors.New("at least one discovery source is required")

	// ErrAnalyzerRequired is returned when no analyzer is provided.
	ErrAnalyzerRequired = errors.New("analyzer is required")
)

// defaultSuggestions accompany every fatal search failure.
var defaultSuggestions = []string{
	"Try a different search query",
	"Check if the platforms are available",
	"Verify API keys are configured correctly",
}

// SearchError is the structured error surfaced when a search run fails
// fatally. Per-candidate and per-platform failures degrade gracefully and
// never produce one.
type SearchError struct {
	Message     string   `json:"error"`
	Details     string   `json:"details"`
	Suggestions []string `json:"suggestions"`

	cause error
}

func newSearchError(message string, cause error) *SearchError {
	e := &SearchError{
		Message:     message,
		Suggestions: defaultSuggestions,
		cause:       cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

func (e *SearchError) Error() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

func (e *SearchError) Unwrap() error {
	return e.cause
}
