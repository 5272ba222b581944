package storage

import (
	"testing"
	"time"

	"github.com/poiesic/viralscope/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("test content")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalSearchRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	completed := now.Add(3 * time.Second)

	tests := []struct {
		name   string
		record *core.SearchRecord
	}{
		{
			name: "processing record",
			record: &core.SearchRecord{
				Id:        core.ID(1),
				Query:     "coffee",
				Status:    core.StatusProcessing,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name: "completed record",
			record: &core.SearchRecord{
				Id:           core.ID(2),
				Query:        "latte art",
				Status:       core.StatusCompleted,
				TotalResults: 17,
				CreatedAt:    now,
				UpdatedAt:    completed,
				CompletedAt:  &completed,
			},
		},
		{
			name: "failed record",
			record: &core.SearchRecord{
				Id:          core.ID(3),
				Query:       "sunset",
				Status:      core.StatusFailed,
				CreatedAt:   now,
				UpdatedAt:   completed,
				CompletedAt: &completed,
			},
		},
		{
			name: "unicode query",
			record: &core.SearchRecord{
				Id:        core.ID(4),
				Query:     "café ☕ niño",
				Status:    core.StatusProcessing,
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalSearchRecord(tt.record)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalSearchRecord(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.record.Id, decoded.Id)
			assert.Equal(t, tt.record.Query, decoded.Query)
			assert.Equal(t, tt.record.Status, decoded.Status)
			assert.Equal(t, tt.record.TotalResults, decoded.TotalResults)
			assert.True(t, tt.record.CreatedAt.Equal(decoded.CreatedAt))
			assert.True(t, tt.record.UpdatedAt.Equal(decoded.UpdatedAt))
			if tt.record.CompletedAt == nil {
				assert.Nil(t, decoded.CompletedAt)
			} else {
				require.NotNil(t, decoded.CompletedAt)
				assert.True(t, tt.record.CompletedAt.Equal(*decoded.CompletedAt))
			}
		})
	}
}

func TestUnmarshalSearchRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalSearchRecord(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestMarshalUnmarshalViralImage(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name  string
		image *core.ViralImage
	}{
		{
			name: "minimal image",
			image: &core.ViralImage{
				Id:        core.ID(1),
				SearchId:  core.ID(10),
				ImageURL:  "https://cdn.example/a.jpg",
				Platform:  core.PlatformInstagram,
				PostDate:  now,
				CreatedAt: now,
			},
		},
		{
			name: "image with everything",
			image: &core.ViralImage{
				Id:               core.ID(2),
				SearchId:         core.ID(10),
				ImageURL:         "https://cdn.example/b.jpg",
				PostURL:          "https://instagram.com/p/ABC",
				Platform:         core.PlatformInstagram,
				Title:            "Morning espresso",
				Description:      "the perfect pour #coffee #latteart",
				EngagementScore:  87,
				ViewsEstimate:    12000,
				LikesEstimate:    3400,
				CommentsEstimate: 210,
				SharesEstimate:   55,
				Author:           "jane",
				AuthorFollowers:  98000,
				PostDate:         now,
				Hashtags:         []string{"coffee", "latteart"},
				CreatedAt:        now,
			},
		},
		{
			name: "unicode fields",
			image: &core.ViralImage{
				Id:        core.ID(3),
				SearchId:  core.ID(11),
				ImageURL:  "https://cdn.example/c.jpg",
				Platform:  core.PlatformFacebook,
				Title:     "世界 🌍 émojis",
				Author:    "señor_café",
				PostDate:  now,
				CreatedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalViralImage(tt.image)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalViralImage(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.image.Id, decoded.Id)
			assert.Equal(t, tt.image.SearchId, decoded.SearchId)
			assert.Equal(t, tt.image.ImageURL, decoded.ImageURL)
			assert.Equal(t, tt.image.PostURL, decoded.PostURL)
			assert.Equal(t, tt.image.Platform, decoded.Platform)
			assert.Equal(t, tt.image.Title, decoded.Title)
			assert.Equal(t, tt.image.Description, decoded.Description)
			assert.Equal(t, tt.image.EngagementScore, decoded.EngagementScore)
			assert.Equal(t, tt.image.ViewsEstimate, decoded.ViewsEstimate)
			assert.Equal(t, tt.image.LikesEstimate, decoded.LikesEstimate)
			assert.Equal(t, tt.image.CommentsEstimate, decoded.CommentsEstimate)
			assert.Equal(t, tt.image.SharesEstimate, decoded.SharesEstimate)
			assert.Equal(t, tt.image.Author, decoded.Author)
			assert.Equal(t, tt.image.AuthorFollowers, decoded.AuthorFollowers)
			assert.True(t, tt.image.PostDate.Equal(decoded.PostDate))
			assert.True(t, tt.image.CreatedAt.Equal(decoded.CreatedAt))
			// Handle nil vs empty slice
			if len(tt.image.Hashtags) == 0 {
				assert.Empty(t, decoded.Hashtags)
			} else {
				assert.Equal(t, tt.image.Hashtags, decoded.Hashtags)
			}
		})
	}
}

func TestUnmarshalViralImage_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalViralImage(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestRoundTripConsistency(t *testing.T) {
	t.Run("multiple marshal-unmarshal cycles", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		original := &core.ViralImage{
			Id:              core.ID(999),
			SearchId:        core.ID(42),
			ImageURL:        "https://cdn.example/x.jpg",
			Platform:        core.PlatformInstagram,
			Title:           "Testing consistency",
			EngagementScore: 73,
			Hashtags:        []string{"a", "b"},
			PostDate:        now,
			CreatedAt:       now,
		}

		current := original
		for i := 0; i < 3; i++ {
			data := MarshalViralImage(current)
			decoded, err := UnmarshalViralImage(data)
			require.NoError(t, err)
			current = decoded
		}

		assert.Equal(t, original.Id, current.Id)
		assert.Equal(t, original.SearchId, current.SearchId)
		assert.Equal(t, original.Title, current.Title)
		assert.Equal(t, original.Hashtags, current.Hashtags)
		assert.True(t, original.PostDate.Equal(current.PostDate))
	})
}
