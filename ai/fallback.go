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


package ai

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/poiesic/viralscope/core"
)

// FallbackViralFactor marks an Analysis whose estimates were synthesized
// because the inference capability was unavailable or its output unusable.
const FallbackViralFactor = "content analysis unavailable"

// fallbackAuthor is the author placeholder used in synthesized analyses.
const fallbackAuthor = "content_creator"

// FallbackAnalyzer produces randomized, bounded-range analyses for use when
// the real inference capability is degraded. Estimates are sampled uniformly
// from fixed ranges so every candidate still receives a plausible score.
//
// FallbackAnalyzer implements Analyzer and never returns an error.
type FallbackAnalyzer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

var _ Analyzer = (*FallbackAnalyzer)(nil)

// NewFallbackAnalyzer creates a fallback analyzer seeded from the clock.
func NewFallbackAnalyzer() *FallbackAnalyzer {
	now := uint64(time.Now().UnixNano())
	return NewFallbackAnalyzerWithRand(rand.New(rand.NewPCG(now, now>>32)))
}

// NewFallbackAnalyzerWithRand creates a fallback analyzer with a caller
// supplied randomness source, so tests can pin deterministic output.
func NewFallbackAnalyzerWithRand(rnd *rand.Rand) *FallbackAnalyzer {
	return &FallbackAnalyzer{rnd: rnd}
}

// Analyze synthesizes an Analysis for the candidate. Estimate ranges:
// likes [100,1100), comments [10,110), shares [5,55), views [1000,6000),
// followers [1000,11000), engagement score [30,70), content quality [40,70).
func (f *FallbackAnalyzer) Analyze(_ context.Context, candidate *core.Candidate) (*Analysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	title := ""
	description := ""
	if candidate != nil {
		title = candidate.Title
		description = candidate.Description
	}
	if title == "" {
		title = core.DefaultTitle
	}
	if description == "" {
		description = "Engaging social media content"
	}

	return &Analysis{
		EstimatedLikes:     100 + f.rnd.IntN(1000),
		EstimatedComments:  10 + f.rnd.IntN(100),
		EstimatedShares:    5 + f.rnd.IntN(50),
		EstimatedViews:     1000 + f.rnd.IntN(5000),
		EstimatedFollowers: 1000 + f.rnd.IntN(10000),
		EngagementScore:    30 + f.rnd.IntN(40),
		ContentQuality:     40 + f.rnd.IntN(30),
		ViralFactors:       []string{FallbackViralFactor},
		SuggestedTitle:     title,
		Description:        description,
		Author:             fallbackAuthor,
		Hashtags:           []string{},
	}, nil
}
