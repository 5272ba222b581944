package scoring

import (
	"testing"

	"github.com/poiesic/viralscope/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func img(platform core.Platform, score int, author string, followers int) *core.ViralImage {
	return &core.ViralImage{
		Platform:        platform,
		EngagementScore: score,
		Author:          author,
		AuthorFollowers: followers,
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalImages)
	assert.Zero(t, s.AvgEngagement)
	assert.Empty(t, s.PlatformDistribution)
	assert.Empty(t, s.TopAuthors)
}

func TestSummarizeAverages(t *testing.T) {
	s := Summarize([]*core.ViralImage{
		img(core.PlatformInstagram, 80, "a", 100),
		img(core.PlatformInstagram, 65, "b", 200),
		img(core.PlatformFacebook, 41, "c", 300),
	})

	assert.Equal(t, 3, s.TotalImages)
	assert.InDelta(t, 62.0, s.AvgEngagement, 1e-9)
	assert.Equal(t, map[core.Platform]int{
		core.PlatformInstagram: 2,
		core.PlatformFacebook:  1,
	}, s.PlatformDistribution)
}

func TestSummarizeAverageRounding(t *testing.T) {
	s := Summarize([]*core.ViralImage{
		img(core.PlatformInstagram, 50, "a", 0),
		img(core.PlatformInstagram, 51, "b", 0),
		img(core.PlatformInstagram, 51, "c", 0),
	})
	// 152/3 = 50.666... -> 50.67
	assert.InDelta(t, 50.67, s.AvgEngagement, 1e-9)
}

func TestSummarizeTopAuthors(t *testing.T) {
	t.Run("grouped with max followers and post counts", func(t *testing.T) {
		s := Summarize([]*core.ViralImage{
			img(core.PlatformInstagram, 10, "jane", 5000),
			img(core.PlatformInstagram, 10, "jane", 8000),
			img(core.PlatformFacebook, 10, "bob", 100),
		})
		require.Len(t, s.TopAuthors, 2)
		assert.Equal(t, core.AuthorStat{Author: "jane", Followers: 8000, PostsCount: 2}, s.TopAuthors[0])
		assert.Equal(t, core.AuthorStat{Author: "bob", Followers: 100, PostsCount: 1}, s.TopAuthors[1])
	})

	t.Run("limited to five", func(t *testing.T) {
		images := make([]*core.ViralImage, 0, 8)
		for i := 0; i < 8; i++ {
			images = append(images, img(core.PlatformInstagram, 10, string(rune('a'+i)), (i+1)*100))
		}
		s := Summarize(images)
		require.Len(t, s.TopAuthors, 5)
		assert.Equal(t, 800, s.TopAuthors[0].Followers)
		assert.Equal(t, 400, s.TopAuthors[4].Followers)
	})

	t.Run("placeholder and empty authors excluded", func(t *testing.T) {
		s := Summarize([]*core.ViralImage{
			img(core.PlatformInstagram, 10, core.ExcludedAuthor, 9999),
			img(core.PlatformInstagram, 10, "", 9999),
			img(core.PlatformInstagram, 10, "jane", 10),
		})
		require.Len(t, s.TopAuthors, 1)
		assert.Equal(t, "jane", s.TopAuthors[0].Author)
	})
}

func TestSummarizeIdempotent(t *testing.T) {
	images := []*core.ViralImage{
		img(core.PlatformInstagram, 80, "jane", 5000),
		img(core.PlatformFacebook, 40, "bob", 100),
	}
	first := Summarize(images)
	second := Summarize(images)
	assert.Equal(t, first, second)
}
