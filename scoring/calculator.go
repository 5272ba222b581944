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


package scoring

import (
	"math"

	"github.com/poiesic/viralscope/ai"
	"github.com/poiesic/viralscope/core"
)

// DefaultScore is returned when no usable inputs exist to score against.
const DefaultScore = 30

// Per-term caps. Real metrics weigh more heavily than the AI estimate.
const (
	likesCap    = 30.0
	commentsCap = 20.0
	viewsCap    = 25.0
	aiWeight    = 0.25

	qualityBonus          = 10.0
	qualityBonusThreshold = 70

	hashtagBonus          = 5.0
	hashtagBonusThreshold = 3
)

// Score combines normalized metrics and an AI analysis into a single
// engagement score in [0, 100].
//
// The formula is additive with independently capped terms:
// likes/100 up to 30, comments/10 up to 20, views/1000 up to 25, the AI
// engagement score at 25% weight, +10 when content quality exceeds 70, and
// +5 when the metrics carry more than 3 hashtags. Zero or absent bases
// contribute nothing. The sum is rounded and clamped to 100.
//
// Score is monotonic in each input and never fails; a nil analysis yields
// the default moderate score.
func Score(m core.NormalizedMetrics, analysis *ai.Analysis) int {
	if analysis == nil {
		return DefaultScore
	}

	var score float64

	if m.Likes > 0 {
		score += math.Min(float64(m.Likes)/100, likesCap)
	}
	if m.Comments > 0 {
		score += math.Min(float64(m.Comments)/10, commentsCap)
	}
	if m.Views > 0 {
		score += math.Min(float64(m.Views)/1000, viewsCap)
	}

	if analysis.EngagementScore > 0 {
		score += float64(analysis.EngagementScore) * aiWeight
	}

	if analysis.ContentQuality > qualityBonusThreshold {
		score += qualityBonus
	}

	if len(m.Hashtags) > hashtagBonusThreshold {
		score += hashtagBonus
	}

	result := int(math.Round(score))
	if result > 100 {
		return 100
	}
	if result < 0 {
		return 0
	}
	return result
}
