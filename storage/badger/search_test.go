package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/viralscope/core"
	"github.com/poiesic/viralscope/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (storage.SearchRepository, storage.ImageRepository) {
	t.Helper()
	searchRepo, imageRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		searchRepo.Close()
		imageRepo.Close()
		backend.Close()
	})
	return searchRepo, imageRepo
}

func TestCreateSearch(t *testing.T) {
	searchRepo, _ := setupRepos(t)
	ctx := context.Background()

	record, err := searchRepo.CreateSearch(ctx, "coffee")
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.NotZero(t, record.Id)
	assert.Equal(t, "coffee", record.Query)
	assert.Equal(t, core.StatusProcessing, record.Status)
	assert.Zero(t, record.TotalResults)
	assert.False(t, record.CreatedAt.IsZero())
	assert.Equal(t, record.CreatedAt, record.UpdatedAt)
	assert.Nil(t, record.CompletedAt)
}

func TestCreateSearchUniqueIDs(t *testing.T) {
	searchRepo, _ := setupRepos(t)
	ctx := context.Background()

	seen := make(map[core.ID]bool)
	for i := 0; i < 10; i++ {
		record, err := searchRepo.CreateSearch(ctx, "coffee")
		require.NoError(t, err)
		assert.False(t, seen[record.Id], "duplicate ID %d", record.Id)
		seen[record.Id] = true
	}
}

func TestFinalizeSearch(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		searchRepo, _ := setupRepos(t)
		ctx := context.Background()

		created, err := searchRepo.CreateSearch(ctx, "coffee")
		require.NoError(t, err)

		finalized, err := searchRepo.FinalizeSearch(ctx, created.Id, core.StatusCompleted, 7)
		require.NoError(t, err)

		assert.Equal(t, core.StatusCompleted, finalized.Status)
		assert.Equal(t, 7, finalized.TotalResults)
		require.NotNil(t, finalized.CompletedAt)
		assert.False(t, finalized.UpdatedAt.Before(created.CreatedAt))

		// Round-trips through storage
		stored, err := searchRepo.GetSearch(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, core.StatusCompleted, stored.Status)
		assert.Equal(t, 7, stored.TotalResults)
		require.NotNil(t, stored.CompletedAt)
	})

	t.Run("failed", func(t *testing.T) {
		searchRepo, _ := setupRepos(t)
		ctx := context.Background()

		created, err := searchRepo.CreateSearch(ctx, "coffee")
		require.NoError(t, err)

		finalized, err := searchRepo.FinalizeSearch(ctx, created.Id, core.StatusFailed, 0)
		require.NoError(t, err)
		assert.Equal(t, core.StatusFailed, finalized.Status)
		assert.Zero(t, finalized.TotalResults)
		require.NotNil(t, finalized.CompletedAt)
	})

	t.Run("missing record", func(t *testing.T) {
		searchRepo, _ := setupRepos(t)
		_, err := searchRepo.FinalizeSearch(context.Background(), core.ID(9999), core.StatusCompleted, 1)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestGetSearch(t *testing.T) {
	searchRepo, _ := setupRepos(t)
	ctx := context.Background()

	created, err := searchRepo.CreateSearch(ctx, "latte art")
	require.NoError(t, err)

	stored, err := searchRepo.GetSearch(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, stored.Id)
	assert.Equal(t, "latte art", stored.Query)

	_, err = searchRepo.GetSearch(ctx, core.ID(9999))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetRecentSearches(t *testing.T) {
	searchRepo, _ := setupRepos(t)
	ctx := context.Background()

	queries := []string{"first", "second", "third", "fourth"}
	for _, q := range queries {
		_, err := searchRepo.CreateSearch(ctx, q)
		require.NoError(t, err)
		// CreatedAt has microsecond resolution in the date index
		time.Sleep(time.Millisecond)
	}

	t.Run("newest first", func(t *testing.T) {
		recent, err := searchRepo.GetRecentSearches(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 4)
		assert.Equal(t, "fourth", recent[0].Query)
		assert.Equal(t, "first", recent[3].Query)
	})

	t.Run("respects limit", func(t *testing.T) {
		recent, err := searchRepo.GetRecentSearches(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "fourth", recent[0].Query)
		assert.Equal(t, "third", recent[1].Query)
	})

	t.Run("empty store", func(t *testing.T) {
		emptyRepo, _ := setupRepos(t)
		recent, err := emptyRepo.GetRecentSearches(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, recent)
	})
}
