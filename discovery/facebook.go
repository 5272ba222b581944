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

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/viralscope/core"
)

// facebookPlaceholderImage stands in for results whose web search entry
// carries no thumbnail. Facebook does not expose post images through
// site-scoped search the way Instagram exposes display URLs.
const facebookPlaceholderImage = "https://graph.facebook.com/v12.0/facebook/picture?type=large"

// FacebookSource discovers Facebook posts through site-scoped web search.
// There is no platform-native provider and therefore no secondary strategy;
// a search failure yields an empty candidate set.
type FacebookSource struct {
	web    WebSearcher
	logger *slog.Logger
}

// NewFacebookSource creates a Facebook discovery source from a web searcher.
func NewFacebookSource(web WebSearcher) (*FacebookSource, error) {
	if web == nil {
		return nil, ErrWebSearcherRequired
	}
	return &FacebookSource{
		web:    web,
		logger: slog.Default().With("component", "facebook-source"),
	}, nil
}

// Discover implements Source.
func (s *FacebookSource) Discover(ctx context.Context, query string, limit int) ([]*core.Candidate, error) {
	searchQuery := fmt.Sprintf("site:facebook.com %q viral popular engagement", query)
	results, err := s.web.SearchWeb(ctx, searchQuery, limit)
	if err != nil {
		s.logger.Warn("web search failed", "query", query, "error", err)
		return []*core.Candidate{}, nil
	}

	candidates := make([]*core.Candidate, 0, len(results))
	for _, r := range results {
		if r.Link == "" {
			continue
		}
		imageURL := r.Thumbnail
		if imageURL == "" {
			imageURL = facebookPlaceholderImage
		}
		candidates = append(candidates, &core.Candidate{
			ProviderID:  fmt.Sprintf("fb_%016x", uint64(core.IDFromContent(r.Link))),
			ImageURL:    imageURL,
			PostURL:     r.Link,
			Title:       r.Title,
			Description: r.Snippet,
			Platform:    core.PlatformFacebook,
		})
		if len(candidates) == limit {
			break
		}
	}
	s.logger.Debug("web search complete", "query", query, "candidates", len(candidates))
	return candidates, nil
}
