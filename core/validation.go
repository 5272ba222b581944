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

import (
	"fmt"
	"strings"
)

// Normalize fills in default values for unset request fields: MaxImages 20
// and both platforms when none are given. It never rewrites invalid values;
// those are left for Validate to reject. It must be called before Validate
// on externally supplied requests.
func (r *SearchRequest) Normalize() {
	if r.MaxImages == 0 {
		r.MaxImages = DefaultMaxImages
	}
	if len(r.Platforms) == 0 {
		r.Platforms = []Platform{PlatformInstagram, PlatformFacebook}
	}
}

// Normalized returns a normalized copy of the request, leaving the
// original untouched. A nil request stays nil.
func (r *SearchRequest) Normalized() *SearchRequest {
	if r == nil {
		return nil
	}
	c := *r
	c.Normalize()
	return &c
}

// Validate checks a SearchRequest against domain rules.
//
// Validation rules:
//   - Query must not be empty or whitespace-only
//   - MaxImages must be in [1, 50]
//   - MinEngagement must not be negative
//   - Platforms must be non-empty and contain only supported values
func (r *SearchRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}

	if strings.TrimSpace(r.Query) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrEmptyQuery)
	}

	if r.MaxImages < 1 || r.MaxImages > MaxImagesLimit {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrMaxImagesRange)
	}

	if r.MinEngagement < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrNegativeMinEngagement)
	}

	if len(r.Platforms) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrNoPlatforms)
	}

	for _, p := range r.Platforms {
		if err := ValidatePlatform(p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
	}

	return nil
}

// ValidatePlatform validates that a Platform has a supported value.
func ValidatePlatform(p Platform) error {
	if p != PlatformInstagram && p != PlatformFacebook {
		return fmt.Errorf("%w: %q", ErrUnknownPlatform, p)
	}
	return nil
}
