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


// Package apify runs Apify actors synchronously and returns their dataset
// items. It satisfies the discovery HashtagScraper interface through the
// Instagram hashtag scraper actor.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://api.apify.com"

	// instagramHashtagActor is the public actor scraping posts for a
	// hashtag. Actor IDs use ~ in place of / in URLs.
	instagramHashtagActor = "apify~instagram-hashtag-scraper"

	// Actor runs block until the dataset is ready, so the timeout is
	// generous.
	defaultTimeout = 120 * time.Second
)

// Config holds Apify client settings.
type Config struct {
	// Token authenticates actor runs. Required.
	Token string

	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string

	// HTTPClient overrides the default client.
	HTTPClient *http.Client
}

// Client runs Apify actors.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates an Apify client. The token may be empty; runs then
// fail with ErrMissingToken, letting callers fall back to other discovery
// strategies.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		token:   cfg.Token,
		baseURL: cfg.BaseURL,
		http:    cfg.HTTPClient,
		logger:  slog.Default().With("component", "apify-client"),
	}
}

type hashtagRunInput struct {
	Hashtags      []string `json:"hashtags"`
	ResultsLimit  int      `json:"resultsLimit"`
	AddParentData bool     `json:"addParentData"`
}

// ScrapeHashtag implements discovery.HashtagScraper. It runs the Instagram
// hashtag scraper actor synchronously and returns the dataset items as
// opaque maps; downstream extraction reads the provider fields.
func (c *Client) ScrapeHashtag(ctx context.Context, hashtag string, limit int) ([]map[string]any, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	input := hashtagRunInput{
		Hashtags:      []string{hashtag},
		ResultsLimit:  limit,
		AddParentData: false,
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode actor input: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s",
		c.baseURL, instagramHashtagActor, url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("actor run failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("actor run complete",
		"actor", instagramHashtagActor, "hashtag", hashtag,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	// run-sync endpoints answer 201 on success.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: actor returned status %d", ErrRunFailed, resp.StatusCode)
	}

	var items []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode dataset items: %w", err)
	}
	return items, nil
}
