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


// Package serper implements web and image search against the Serper API
// (google.serper.dev). It satisfies the discovery WebSearcher and
// ImageSearcher interfaces.
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/poiesic/viralscope/discovery"
)

const (
	defaultBaseURL = "https://google.serper.dev"
	defaultTimeout = 30 * time.Second
)

// Config holds Serper client settings.
type Config struct {
	// APIKey authenticates requests. Required.
	APIKey string

	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string

	// HTTPClient overrides the default client.
	HTTPClient *http.Client

	// RequestsPerSecond throttles outbound calls when positive. Zero
	// disables client-side rate limiting.
	RequestsPerSecond float64

	// BurstLimit is the limiter burst size; defaults to 1 when throttled.
	BurstLimit int
}

// Client calls the Serper search API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a Serper client. The API key may be empty; requests
// then fail with ErrMissingAPIKey, letting callers fall back to other
// discovery strategies.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.BurstLimit
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http:    cfg.HTTPClient,
		limiter: limiter,
		logger:  slog.Default().With("component", "serper-client"),
	}
}

type searchRequest struct {
	Query      string `json:"q"`
	Num        int    `json:"num"`
	Country    string `json:"gl,omitempty"`
	Language   string `json:"hl,omitempty"`
	SafeSearch string `json:"safe,omitempty"`
}

type webResponse struct {
	Organic []struct {
		Title     string `json:"title"`
		Link      string `json:"link"`
		Snippet   string `json:"snippet"`
		Thumbnail string `json:"thumbnail"`
	} `json:"organic"`
}

type imageResponse struct {
	Images []struct {
		Title    string `json:"title"`
		ImageURL string `json:"imageUrl"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
	} `json:"images"`
}

// SearchWeb implements discovery.WebSearcher.
func (c *Client) SearchWeb(ctx context.Context, query string, limit int) ([]discovery.WebResult, error) {
	body := searchRequest{Query: query, Num: limit, Country: "us", Language: "en"}

	var decoded webResponse
	if err := c.post(ctx, "/search", body, &decoded); err != nil {
		return nil, err
	}

	results := make([]discovery.WebResult, 0, len(decoded.Organic))
	for _, r := range decoded.Organic {
		results = append(results, discovery.WebResult{
			Title:     r.Title,
			Link:      r.Link,
			Snippet:   r.Snippet,
			Thumbnail: r.Thumbnail,
		})
	}
	return results, nil
}

// SearchImages implements discovery.ImageSearcher.
func (c *Client) SearchImages(ctx context.Context, query string, limit int) ([]discovery.ImageResult, error) {
	body := searchRequest{Query: query, Num: limit, SafeSearch: "off"}

	var decoded imageResponse
	if err := c.post(ctx, "/images", body, &decoded); err != nil {
		return nil, err
	}

	results := make([]discovery.ImageResult, 0, len(decoded.Images))
	for _, r := range decoded.Images {
		results = append(results, discovery.ImageResult{
			Title:    r.Title,
			ImageURL: r.ImageURL,
			Link:     r.Link,
			Snippet:  r.Snippet,
		})
	}
	return results, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("serper request complete",
		"path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrRequestFailed, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
