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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRequest indicates a SearchRequest failed validation.
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrEmptyQuery indicates the Query field is empty.
	ErrEmptyQuery = errors.New("search query is required")

	// ErrMaxImagesRange indicates MaxImages is outside [1, 50].
	ErrMaxImagesRange = errors.New("max_images must be between 1 and 50")

	// ErrNegativeMinEngagement indicates MinEngagement is negative.
	ErrNegativeMinEngagement = errors.New("min_engagement cannot be negative")

	// ErrNoPlatforms indicates the Platforms set is empty after normalization.
	ErrNoPlatforms = errors.New("at least one platform is required")

	// ErrUnknownPlatform indicates a Platform value outside the supported set.
	ErrUnknownPlatform = errors.New("unknown platform")
)
