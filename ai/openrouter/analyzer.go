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


package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/poiesic/viralscope/ai"
	"github.com/poiesic/viralscope/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Analyzer implements ai.Analyzer using an OpenAI-compatible chat API.
// It asks the model for a JSON analysis object embedded in a free-text reply
// and extracts it. Every failure mode is returned as an error; the caller is
// responsible for degrading to a fallback analysis.
type Analyzer struct {
	client      llms.Model
	apiKey      string
	maxTokens   int
	temperature float64
	logger      *slog.Logger
}

var _ ai.Analyzer = (*Analyzer)(nil)

// newAnalyzer is an internal constructor that returns the concrete type.
func newAnalyzer(config *ai.Config) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Construct the client even without credentials so that configuration
	// problems surface at startup while a missing key stays a runtime
	// fallback condition, not a constructor failure.
	token := config.APIKey
	if token == "" {
		token = "none"
	}
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		client:      client,
		apiKey:      config.APIKey,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		logger:      slog.Default().With("component", "openrouter-analyzer"),
	}, nil
}

// NewAnalyzer creates a new analyzer using the provided configuration.
//
// Returns ai.Analyzer interface to enforce abstraction.
func NewAnalyzer(config *ai.Config) (ai.Analyzer, error) {
	return newAnalyzer(config)
}

// Analyze sends the candidate to the model and parses the JSON analysis
// object out of the reply text.
func (a *Analyzer) Analyze(ctx context.Context, candidate *core.Candidate) (*ai.Analysis, error) {
	if a.apiKey == "" {
		a.logger.Debug("no API key configured, analysis unavailable")
		return nil, ai.ErrNoCredentials
	}

	prompt := buildAnalysisPrompt(candidate)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := a.client.GenerateContent(ctx, content,
		llms.WithTemperature(a.temperature),
		llms.WithMaxTokens(a.maxTokens))
	if err != nil {
		a.logger.Error("failed to generate analysis", "post", candidate.ProviderID, "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		a.logger.Warn("no choices returned from model", "post", candidate.ProviderID)
		return nil, ai.ErrEmptyReply
	}

	reply := response.Choices[0].Content
	if reply == "" {
		return nil, ai.ErrEmptyReply
	}

	raw, ok := extractJSONObject(reply)
	if !ok {
		a.logger.Warn("no JSON object in model reply", "post", candidate.ProviderID, "replyLen", len(reply))
		return nil, ai.ErrNoAnalysisJSON
	}

	var analysis ai.Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		a.logger.Warn("error parsing analysis reply", "post", candidate.ProviderID, "err", err)
		return nil, fmt.Errorf("parsing analysis JSON: %w", err)
	}

	a.logger.Debug("analysis parsed",
		"post", candidate.ProviderID,
		"engagementScore", analysis.EngagementScore,
		"contentQuality", analysis.ContentQuality)
	return &analysis, nil
}
