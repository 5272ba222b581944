package metrics

import (
	"testing"
	"time"

	"github.com/poiesic/viralscope/core"
	"github.com/stretchr/testify/assert"
)

func TestExtractNilPayload(t *testing.T) {
	e := NewExtractor()

	m := e.Extract(nil)
	assert.Zero(t, m.Likes)
	assert.Zero(t, m.Comments)
	assert.Zero(t, m.Views)
	assert.Zero(t, m.Shares)
	assert.Zero(t, m.AuthorFollowers)
	assert.Empty(t, m.Author)
	assert.Empty(t, m.Hashtags)
	assert.WithinDuration(t, time.Now().UTC(), m.PostDate, 5*time.Second)
}

func TestExtractInstagramFieldMapping(t *testing.T) {
	e := NewExtractor()

	t.Run("primary field names", func(t *testing.T) {
		m := e.Extract(&core.RawPayload{
			Platform: core.PlatformInstagram,
			Fields: map[string]any{
				"likesCount":          float64(4200),
				"commentsCount":       float64(310),
				"videoViewCount":      float64(90000),
				"ownerUsername":       "barista_jane",
				"ownerFollowersCount": float64(15000),
				"hashtags":            []any{"coffee", "latteart"},
			},
		})
		assert.Equal(t, 4200, m.Likes)
		assert.Equal(t, 310, m.Comments)
		assert.Equal(t, 90000, m.Views)
		assert.Equal(t, "barista_jane", m.Author)
		assert.Equal(t, 15000, m.AuthorFollowers)
		assert.Equal(t, []string{"coffee", "latteart"}, m.Hashtags)
	})

	t.Run("alternate field names", func(t *testing.T) {
		m := e.Extract(&core.RawPayload{
			Platform: core.PlatformInstagram,
			Fields: map[string]any{
				"likes":      float64(12),
				"comments":   float64(3),
				"viewsCount": float64(800),
				"username":   "someone",
			},
		})
		assert.Equal(t, 12, m.Likes)
		assert.Equal(t, 3, m.Comments)
		assert.Equal(t, 800, m.Views)
		assert.Equal(t, "someone", m.Author)
	})

	t.Run("negative counts clamp to zero", func(t *testing.T) {
		m := e.Extract(&core.RawPayload{
			Platform: core.PlatformInstagram,
			Fields:   map[string]any{"likesCount": float64(-50)},
		})
		assert.Zero(t, m.Likes)
	})

	t.Run("facebook payloads carry no structured counts", func(t *testing.T) {
		m := e.Extract(&core.RawPayload{
			Platform: core.PlatformFacebook,
			Fields:   map[string]any{"likesCount": float64(999)},
		})
		assert.Zero(t, m.Likes)
	})
}

func TestExtractTimestampNormalization(t *testing.T) {
	e := NewExtractor()

	extractWith := func(ts any) core.NormalizedMetrics {
		return e.Extract(&core.RawPayload{
			Platform: core.PlatformInstagram,
			Fields:   map[string]any{"takenAtTimestamp": ts},
		})
	}

	t.Run("second epoch", func(t *testing.T) {
		m := extractWith(float64(1700000000))
		assert.Equal(t, time.Unix(1700000000, 0).UTC(), m.PostDate)
	})

	t.Run("millisecond epoch", func(t *testing.T) {
		m := extractWith(float64(1700000000000))
		assert.Equal(t, time.UnixMilli(1700000000000).UTC(), m.PostDate)
	})

	t.Run("RFC3339 string", func(t *testing.T) {
		m := extractWith("2024-05-01T10:30:00Z")
		assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), m.PostDate)
	})

	t.Run("implausible year discarded", func(t *testing.T) {
		m := extractWith(float64(100)) // 1970
		assert.WithinDuration(t, time.Now().UTC(), m.PostDate, 5*time.Second)
	})

	t.Run("beyond plausible window discarded", func(t *testing.T) {
		m := extractWith("2095-01-01T00:00:00Z")
		assert.WithinDuration(t, time.Now().UTC(), m.PostDate, 5*time.Second)
	})

	t.Run("garbage string discarded", func(t *testing.T) {
		m := extractWith("last tuesday")
		assert.WithinDuration(t, time.Now().UTC(), m.PostDate, 5*time.Second)
	})

	t.Run("falls back to timestamp field", func(t *testing.T) {
		m := e.Extract(&core.RawPayload{
			Platform: core.PlatformInstagram,
			Fields:   map[string]any{"timestamp": float64(1700000000)},
		})
		assert.Equal(t, time.Unix(1700000000, 0).UTC(), m.PostDate)
	})
}

func TestExtractCaptionHashtags(t *testing.T) {
	e := NewExtractor()

	t.Run("mined and unioned with provider tags", func(t *testing.T) {
		m := e.Extract(&core.RawPayload{
			Platform: core.PlatformInstagram,
			Fields: map[string]any{
				"hashtags": []any{"coffee"},
				"caption":  "morning #coffee with #LatteArt and #café",
			},
		})
		assert.ElementsMatch(t, []string{"coffee", "LatteArt", "café"}, m.Hashtags)
	})

	t.Run("duplicates removed", func(t *testing.T) {
		m := e.Extract(&core.RawPayload{
			Platform: core.PlatformFacebook,
			Fields:   map[string]any{"caption": "#viral #viral #viral"},
		})
		assert.Equal(t, []string{"viral"}, m.Hashtags)
	})

	t.Run("caption without tags", func(t *testing.T) {
		m := e.Extract(&core.RawPayload{
			Platform: core.PlatformFacebook,
			Fields:   map[string]any{"caption": "no tags here"},
		})
		assert.Empty(t, m.Hashtags)
	})
}
