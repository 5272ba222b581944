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


package discovery

import "errors"

var (
	// ErrHashtagScraperRequired is returned when an Instagram source is
	// constructed without a hashtag scraper.
	ErrHashtagScraperRequired = errors.New("hashtag scraper is required")

	// ErrImageSearcherRequired is returned when an Instagram source is
	// constructed without an image searcher for the fallback path.
	ErrImageSearcherRequired = errors.New("image searcher is required")

	// ErrWebSearcherRequired is returned when a Facebook source is
	// constructed without a web searcher.
	ErrWebSearcherRequired = errors.New("web searcher is required")
)
