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
	"sort"

	"github.com/poiesic/viralscope/core"
)

// topAuthorLimit caps the author ranking in a summary.
const topAuthorLimit = 5

// Summarize computes aggregate statistics over an accepted image set:
// total count, average engagement score (2-decimal rounding), platform
// distribution, and the top authors by follower count.
//
// Summarize is pure and idempotent; an empty input yields a zero-valued
// summary rather than an error.
func Summarize(images []*core.ViralImage) *core.Summary {
	summary := &core.Summary{
		PlatformDistribution: map[core.Platform]int{},
		TopAuthors:           []core.AuthorStat{},
	}

	if len(images) == 0 {
		return summary
	}

	type authorGroup struct {
		followers int
		count     int
	}
	authors := make(map[string]*authorGroup)

	var totalEngagement int
	for _, img := range images {
		totalEngagement += img.EngagementScore
		summary.PlatformDistribution[img.Platform]++

		// ExcludedAuthor is a legacy placeholder distinct from the
		// image-level DefaultAuthor, which still ranks here.
		if img.Author == "" || img.Author == core.ExcludedAuthor {
			continue
		}
		group, ok := authors[img.Author]
		if !ok {
			group = &authorGroup{}
			authors[img.Author] = group
		}
		group.count++
		if img.AuthorFollowers > group.followers {
			group.followers = img.AuthorFollowers
		}
	}

	summary.TotalImages = len(images)
	avg := float64(totalEngagement) / float64(len(images))
	summary.AvgEngagement = math.Round(avg*100) / 100

	stats := make([]core.AuthorStat, 0, len(authors))
	for author, group := range authors {
		stats = append(stats, core.AuthorStat{
			Author:     author,
			Followers:  group.followers,
			PostsCount: group.count,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Followers > stats[j].Followers
	})
	if len(stats) > topAuthorLimit {
		stats = stats[:topAuthorLimit]
	}
	summary.TopAuthors = stats

	return summary
}
