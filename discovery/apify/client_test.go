package apify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeHashtag(t *testing.T) {
	var gotPath, gotToken string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[
			{"id": "1", "shortCode": "ABC", "likesCount": 500, "ownerUsername": "jane"},
			{"id": "2", "shortCode": "DEF", "likesCount": 120}
		]`))
	}))
	defer server.Close()

	client := NewClient(Config{Token: "test-token", BaseURL: server.URL})
	items, err := client.ScrapeHashtag(context.Background(), "coffeeart", 20)
	require.NoError(t, err)

	assert.Equal(t, "/v2/acts/apify~instagram-hashtag-scraper/run-sync-get-dataset-items", gotPath)
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, []any{"coffeeart"}, gotBody["hashtags"])
	assert.Equal(t, float64(20), gotBody["resultsLimit"])
	assert.Equal(t, false, gotBody["addParentData"])

	require.Len(t, items, 2)
	assert.Equal(t, "ABC", items[0]["shortCode"])
	assert.Equal(t, float64(500), items[0]["likesCount"])
}

func TestScrapeHashtagMissingToken(t *testing.T) {
	client := NewClient(Config{})
	_, err := client.ScrapeHashtag(context.Background(), "coffee", 10)
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestScrapeHashtagRunFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := NewClient(Config{Token: "t", BaseURL: server.URL})
	_, err := client.ScrapeHashtag(context.Background(), "coffee", 10)
	assert.ErrorIs(t, err, ErrRunFailed)
}

func TestScrapeHashtagBadPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error": "not an array"}`))
	}))
	defer server.Close()

	client := NewClient(Config{Token: "t", BaseURL: server.URL})
	_, err := client.ScrapeHashtag(context.Background(), "coffee", 10)
	assert.Error(t, err)
}
