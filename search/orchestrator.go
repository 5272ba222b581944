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


// Package search orchestrates a full viral search run: platform discovery,
// metric extraction, AI analysis, scoring, filtering, and persistence.
package search

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/viralscope/ai"
	"github.com/poiesic/viralscope/core"
	"github.com/poiesic/viralscope/discovery"
	"github.com/poiesic/viralscope/metrics"
	"github.com/poiesic/viralscope/scoring"
	"github.com/poiesic/viralscope/storage"
)

// Orchestrator runs viral content searches end to end.
//
// Candidate processing is total: a candidate either becomes a scored image
// or is filtered out, but an individual failure never aborts the run. Only
// the inability to create the search record itself is fatal.
type Orchestrator struct {
	searchRepository storage.SearchRepository
	imageRepository  storage.ImageRepository
	sources          map[core.Platform]discovery.Source
	analyzer         ai.Analyzer
	fallback         ai.Analyzer
	extractor        *metrics.Extractor
	pool             *ants.Pool
	logger           *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithPoolSize sets the worker pool size for per-candidate processing.
// Default is 1, which processes candidates sequentially.
func WithPoolSize(size int) Option {
	return func(o *Orchestrator) error {
		if size < 1 {
			size = 1
		}

		if o.pool != nil {
			o.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		o.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewOrchestrator creates a new search orchestrator. The analyzer is the
// primary AI path; when it fails for a candidate, a fallback analyzer with
// synthetic estimates takes over so analysis never fails a candidate.
func NewOrchestrator(
	searchRepository storage.SearchRepository,
	imageRepository storage.ImageRepository,
	sources map[core.Platform]discovery.Source,
	analyzer ai.Analyzer,
	opts ...Option,
) (*Orchestrator, error) {
	if searchRepository == nil {
		return nil, ErrSearchRepositoryRequired
	}
	if imageRepository == nil {
		return nil, ErrImageRepositoryRequired
	}
	if len(sources) == 0 {
		return nil, ErrSourcesRequired
	}
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}

	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		searchRepository: searchRepository,
		imageRepository:  imageRepository,
		sources:          sources,
		analyzer:         analyzer,
		fallback:         ai.NewFallbackAnalyzer(),
		extractor:        metrics.NewExtractor(),
		pool:             pool,
		logger:           slog.Default().With("component", "search-orchestrator"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(o); err != nil {
			o.Release()
			return nil, err
		}
	}

	return o, nil
}

// Release releases the worker pool.
// The orchestrator should not be used after calling Release.
func (o *Orchestrator) Release() {
	if o.pool != nil {
		o.pool.Release()
	}
}

// Run executes a full search. The request is normalized and validated
// first; the returned results carry the finalized record, the ranked and
// truncated image set, and a freshly computed summary.
func (o *Orchestrator) Run(ctx context.Context, req *core.SearchRequest) (*core.SearchResults, error) {
	req = req.Normalized()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := o.searchRepository.CreateSearch(ctx, req.Query)
	if err != nil {
		return nil, newSearchError("failed to create search", err)
	}

	o.logger.Info("search started",
		"search_id", record.Id, "query", req.Query,
		"platforms", req.Platforms, "max_images", req.MaxImages)

	candidates := o.discover(ctx, req)
	if err := ctx.Err(); err != nil {
		return nil, o.abort(record.Id, err)
	}

	images := o.processCandidates(ctx, record.Id, candidates, req.MinEngagement)
	if err := ctx.Err(); err != nil {
		return nil, o.abort(record.Id, err)
	}

	// Rank and truncate after persistence: the store keeps every accepted
	// image, the response carries only the top ones.
	sort.SliceStable(images, func(i, j int) bool {
		return images[i].EngagementScore > images[j].EngagementScore
	})
	if len(images) > req.MaxImages {
		images = images[:req.MaxImages]
	}

	finalized, err := o.searchRepository.FinalizeSearch(ctx, record.Id, core.StatusCompleted, len(images))
	if err != nil {
		o.logger.Error("failed to finalize search", "search_id", record.Id, "err", err)
		record.Status = core.StatusCompleted
		record.TotalResults = len(images)
		finalized = record
	}

	o.logger.Info("search completed", "search_id", record.Id, "total_results", len(images))

	return &core.SearchResults{
		Search:  finalized,
		Images:  images,
		Summary: scoring.Summarize(images),
	}, nil
}

// Results returns the stored record, ranked images, and a recomputed
// summary for a past search.
func (o *Orchestrator) Results(ctx context.Context, id core.ID) (*core.SearchResults, error) {
	record, err := o.searchRepository.GetSearch(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := o.imageRepository.GetImagesBySearch(ctx, id)
	if err != nil {
		return nil, err
	}
	return &core.SearchResults{
		Search:  record,
		Images:  images,
		Summary: scoring.Summarize(images),
	}, nil
}

// Recent returns the most recent search records, newest first.
func (o *Orchestrator) Recent(ctx context.Context, limit int) ([]*core.SearchRecord, error) {
	if limit < 1 {
		limit = core.DefaultRecentLimit
	}
	return o.searchRepository.GetRecentSearches(ctx, limit)
}

// discover collects candidates from each requested platform. The per-platform
// limit splits the image budget evenly, rounding up. Platform failures
// contribute empty sets rather than failing the run.
func (o *Orchestrator) discover(ctx context.Context, req *core.SearchRequest) []*core.Candidate {
	perPlatform := (req.MaxImages + len(req.Platforms) - 1) / len(req.Platforms)

	var candidates []*core.Candidate
	for _, platform := range req.Platforms {
		source, ok := o.sources[platform]
		if !ok {
			o.logger.Warn("no discovery source for platform", "platform", platform)
			continue
		}
		found, err := source.Discover(ctx, req.Query, perPlatform)
		if err != nil {
			o.logger.Warn("platform discovery failed", "platform", platform, "err", err)
			continue
		}
		o.logger.Debug("platform discovery complete", "platform", platform, "candidates", len(found))
		candidates = append(candidates, found...)
	}
	return candidates
}

// processCandidates scores every candidate on the worker pool, persists the
// ones meeting the engagement threshold, and returns them. Persistence
// failures drop the image from the results but never abort the run.
func (o *Orchestrator) processCandidates(ctx context.Context, searchID core.ID, candidates []*core.Candidate, minEngagement int) []*core.ViralImage {
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		accepted []*core.ViralImage
	)

	for _, candidate := range candidates {
		candidate := candidate
		wg.Add(1)
		task := func() {
			defer wg.Done()

			image := o.processCandidate(ctx, searchID, candidate)
			if image.EngagementScore < minEngagement {
				o.logger.Debug("candidate below engagement threshold",
					"provider_id", candidate.ProviderID, "score", image.EngagementScore)
				return
			}

			if _, err := o.imageRepository.AddImage(ctx, image); err != nil {
				o.logger.Error("failed to persist image",
					"search_id", searchID, "provider_id", candidate.ProviderID, "err", err)
				return
			}

			mu.Lock()
			accepted = append(accepted, image)
			mu.Unlock()
		}
		if err := o.pool.Submit(task); err != nil {
			// Pool unavailable; degrade to inline processing.
			o.logger.Warn("pool submit failed, processing inline", "err", err)
			task()
		}
	}
	wg.Wait()

	return accepted
}

// processCandidate turns one candidate into a scored image. The primary
// analyzer's failure switches to the fallback, so the result is always a
// usable image.
func (o *Orchestrator) processCandidate(ctx context.Context, searchID core.ID, candidate *core.Candidate) *core.ViralImage {
	m := o.extractor.Extract(candidate.Raw)

	analysis, err := o.analyzer.Analyze(ctx, candidate)
	if err != nil {
		o.logger.Warn("AI analysis failed, using fallback",
			"provider_id", candidate.ProviderID, "err", err)
		analysis, _ = o.fallback.Analyze(ctx, candidate)
	}

	score := scoring.Score(m, analysis)
	return buildImage(searchID, candidate, m, analysis, score)
}

// abort finalizes a search as failed, best effort, and wraps the cause.
func (o *Orchestrator) abort(searchID core.ID, cause error) error {
	if _, err := o.searchRepository.FinalizeSearch(context.Background(), searchID, core.StatusFailed, 0); err != nil {
		o.logger.Error("failed to finalize aborted search", "search_id", searchID, "err", err)
	}
	return newSearchError("search aborted", cause)
}

// buildImage assembles the persisted image, preferring real extracted
// metrics over AI estimates field by field.
func buildImage(searchID core.ID, candidate *core.Candidate, m core.NormalizedMetrics, analysis *ai.Analysis, score int) *core.ViralImage {
	image := &core.ViralImage{
		SearchId:         searchID,
		ImageURL:         candidate.ImageURL,
		PostURL:          candidate.PostURL,
		Platform:         candidate.Platform,
		Title:            candidate.Title,
		Description:      candidate.Description,
		EngagementScore:  score,
		ViewsEstimate:    m.Views,
		LikesEstimate:    m.Likes,
		CommentsEstimate: m.Comments,
		SharesEstimate:   m.Shares,
		Author:           m.Author,
		AuthorFollowers:  m.AuthorFollowers,
		PostDate:         m.PostDate,
		Hashtags:         m.Hashtags,
	}

	if analysis != nil {
		if image.ViewsEstimate == 0 {
			image.ViewsEstimate = analysis.EstimatedViews
		}
		if image.LikesEstimate == 0 {
			image.LikesEstimate = analysis.EstimatedLikes
		}
		if image.CommentsEstimate == 0 {
			image.CommentsEstimate = analysis.EstimatedComments
		}
		if image.SharesEstimate == 0 {
			image.SharesEstimate = analysis.EstimatedShares
		}
		if image.Author == "" {
			image.Author = analysis.Author
		}
		if image.AuthorFollowers == 0 {
			image.AuthorFollowers = analysis.EstimatedFollowers
		}
		if image.Title == "" {
			image.Title = analysis.SuggestedTitle
		}
		if image.Description == "" {
			image.Description = analysis.Description
		}
		if len(image.Hashtags) == 0 {
			image.Hashtags = analysis.Hashtags
		}
	}

	if image.Title == "" {
		image.Title = core.DefaultTitle
	}
	if image.Author == "" {
		image.Author = core.DefaultAuthor
	}

	return image
}
