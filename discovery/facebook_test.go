package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/viralscope/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFacebookSourceValidation(t *testing.T) {
	_, err := NewFacebookSource(nil)
	assert.ErrorIs(t, err, ErrWebSearcherRequired)
}

func TestFacebookDiscover(t *testing.T) {
	web := &fakeWebSearcher{results: []WebResult{
		{Title: "Viral coffee post", Link: "https://facebook.com/posts/1", Snippet: "everyone loves it", Thumbnail: "https://img.example/fb.jpg"},
		{Title: "No thumbnail", Link: "https://facebook.com/posts/2", Snippet: "still viral"},
		{Title: "No link, dropped"},
	}}
	src, err := NewFacebookSource(web)
	require.NoError(t, err)

	candidates, err := src.Discover(context.Background(), "coffee", 10)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, `site:facebook.com "coffee" viral popular engagement`, web.gotQuery)

	assert.Equal(t, "https://img.example/fb.jpg", candidates[0].ImageURL)
	assert.Equal(t, facebookPlaceholderImage, candidates[1].ImageURL)
	for _, c := range candidates {
		assert.Equal(t, core.PlatformFacebook, c.Platform)
		assert.NotEmpty(t, c.ProviderID)
		assert.Nil(t, c.Raw)
	}
}

func TestFacebookDiscoverFailureYieldsEmpty(t *testing.T) {
	src, err := NewFacebookSource(&fakeWebSearcher{err: errors.New("serper down")})
	require.NoError(t, err)

	candidates, err := src.Discover(context.Background(), "coffee", 10)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFacebookDiscoverRespectsLimit(t *testing.T) {
	results := make([]WebResult, 0, 6)
	for i := 0; i < 6; i++ {
		results = append(results, WebResult{Link: "https://facebook.com/posts/" + string(rune('a'+i))})
	}
	src, err := NewFacebookSource(&fakeWebSearcher{results: results})
	require.NoError(t, err)

	candidates, err := src.Discover(context.Background(), "x", 2)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}
