package discovery

import (
	"context"

	"github.com/poiesic/viralscope/core"
)

// Source discovers candidate posts for a query on one platform.
//
// Implementations never fail outward: on total failure they return an empty
// candidate set and a nil error, logging the cause internally. The limit
// caps the number of candidates returned.
type Source interface {
	Discover(ctx context.Context, query string, limit int) ([]*core.Candidate, error)
}

// WebResult is one organic result from a general web search capability.
type WebResult struct {
	Title     string
	Link      string
	Snippet   string
	Thumbnail string
}

// ImageResult is one result from a general image search capability.
type ImageResult struct {
	Title    string
	ImageURL string
	Link     string
	Snippet  string
}

// WebSearcher abstracts a general web search provider. Implementations may
// use official APIs, scraping, or other mechanisms.
type WebSearcher interface {
	SearchWeb(ctx context.Context, query string, limit int) ([]WebResult, error)
}

// ImageSearcher abstracts a general image search provider.
type ImageSearcher interface {
	SearchImages(ctx context.Context, query string, limit int) ([]ImageResult, error)
}

// HashtagScraper abstracts a platform-native hashtag discovery provider.
// Items are returned as opaque provider payloads so that downstream metric
// extraction can read provider-specific fields.
type HashtagScraper interface {
	ScrapeHashtag(ctx context.Context, hashtag string, limit int) ([]map[string]any, error)
}
