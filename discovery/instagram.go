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
	"strings"

	"github.com/poiesic/viralscope/core"
)

const instagramPostBaseURL = "https://instagram.com/p/"

// titleRuneLimit caps titles derived from post captions.
const titleRuneLimit = 100

// InstagramSource discovers Instagram posts. The primary strategy scrapes
// the query as a hashtag through a platform-native provider, yielding rich
// payloads with real engagement counts. When scraping fails the source
// falls back to a site-scoped image search, which yields display fields
// only.
type InstagramSource struct {
	hashtags HashtagScraper
	images   ImageSearcher
	logger   *slog.Logger
}

// NewInstagramSource creates an Instagram discovery source from a hashtag
// scraper and a fallback image searcher.
func NewInstagramSource(hashtags HashtagScraper, images ImageSearcher) (*InstagramSource, error) {
	if hashtags == nil {
		return nil, ErrHashtagScraperRequired
	}
	if images == nil {
		return nil, ErrImageSearcherRequired
	}
	return &InstagramSource{
		hashtags: hashtags,
		images:   images,
		logger:   slog.Default().With("component", "instagram-source"),
	}, nil
}

// Discover implements Source.
func (s *InstagramSource) Discover(ctx context.Context, query string, limit int) ([]*core.Candidate, error) {
	// Hashtags cannot contain whitespace, so a multi-word query collapses
	// into a single tag.
	tag := strings.Join(strings.Fields(query), "")

	items, err := s.hashtags.ScrapeHashtag(ctx, tag, limit)
	if err != nil {
		s.logger.Warn("hashtag scrape failed, falling back to image search",
			"query", query, "hashtag", tag, "error", err)
		return s.discoverViaImageSearch(ctx, query, limit)
	}

	candidates := make([]*core.Candidate, 0, len(items))
	for _, item := range items {
		candidate := candidateFromHashtagItem(item)
		if candidate.ImageURL == "" {
			continue
		}
		candidates = append(candidates, candidate)
		if len(candidates) == limit {
			break
		}
	}
	s.logger.Debug("hashtag scrape complete", "hashtag", tag, "candidates", len(candidates))
	return candidates, nil
}

func (s *InstagramSource) discoverViaImageSearch(ctx context.Context, query string, limit int) ([]*core.Candidate, error) {
	searchQuery := fmt.Sprintf("site:instagram.com %q viral popular", query)
	results, err := s.images.SearchImages(ctx, searchQuery, limit)
	if err != nil {
		s.logger.Warn("image search fallback failed", "query", query, "error", err)
		return []*core.Candidate{}, nil
	}

	candidates := make([]*core.Candidate, 0, len(results))
	for _, r := range results {
		if r.ImageURL == "" {
			continue
		}
		candidates = append(candidates, &core.Candidate{
			ProviderID:  fmt.Sprintf("ig_%016x", uint64(core.IDFromContent(r.Link+r.ImageURL))),
			ImageURL:    r.ImageURL,
			PostURL:     r.Link,
			Title:       r.Title,
			Description: r.Snippet,
			Platform:    core.PlatformInstagram,
		})
		if len(candidates) == limit {
			break
		}
	}
	s.logger.Debug("image search fallback complete", "query", query, "candidates", len(candidates))
	return candidates, nil
}

func candidateFromHashtagItem(item map[string]any) *core.Candidate {
	shortCode := stringValue(item, "shortCode")

	providerID := stringValue(item, "id")
	if providerID == "" {
		providerID = shortCode
	}

	imageURL := stringValue(item, "displayUrl")
	if imageURL == "" {
		imageURL = stringValue(item, "thumbnail")
	}

	postURL := stringValue(item, "url")
	if postURL == "" && shortCode != "" {
		postURL = instagramPostBaseURL + shortCode
	}

	caption := stringValue(item, "caption")

	return &core.Candidate{
		ProviderID:  providerID,
		ImageURL:    imageURL,
		PostURL:     postURL,
		Title:       truncateRunes(caption, titleRuneLimit),
		Description: caption,
		Platform:    core.PlatformInstagram,
		Raw: &core.RawPayload{
			Platform: core.PlatformInstagram,
			Fields:   item,
		},
	}
}

func stringValue(item map[string]any, key string) string {
	s, _ := item[key].(string)
	return s
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
