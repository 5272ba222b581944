package storage

import (
	"context"

	"github.com/poiesic/viralscope/core"
)

// SearchRepository manages search record lifecycle.
// Implementations must be thread-safe and support concurrent access.
type SearchRepository interface {
	// CreateSearch creates a new search record in processing state with a
	// sequence-generated ID and timestamps populated.
	CreateSearch(ctx context.Context, query string) (*core.SearchRecord, error)

	// FinalizeSearch transitions a search to a terminal status and stores
	// its result count. Sets UpdatedAt and CompletedAt.
	// Returns ErrNotFound if the record doesn't exist.
	FinalizeSearch(ctx context.Context, id core.ID, status core.SearchStatus, totalResults int) (*core.SearchRecord, error)

	// GetSearch retrieves a single search record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetSearch(ctx context.Context, id core.ID) (*core.SearchRecord, error)

	// GetRecentSearches retrieves the N most recent search records,
	// ordered by creation time descending.
	GetRecentSearches(ctx context.Context, limit int) ([]*core.SearchRecord, error)

	// Close releases repository resources.
	Close() error
}

// ImageRepository manages persisted viral images.
// Implementations must be thread-safe and support concurrent access.
type ImageRepository interface {
	// AddImage persists an image under its parent search with a
	// sequence-generated ID and CreatedAt populated.
	AddImage(ctx context.Context, image *core.ViralImage) (*core.ViralImage, error)

	// GetImagesBySearch retrieves all images for a search, ordered by
	// engagement score descending. A search with no images yields an
	// empty slice, not an error.
	GetImagesBySearch(ctx context.Context, searchID core.ID) ([]*core.ViralImage, error)

	// Close releases repository resources.
	Close() error
}
