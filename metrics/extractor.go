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


package metrics

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/viralscope/core"
)

// hashtagPattern matches #tags in captions, including Latin accented
// characters, mirroring what platforms themselves accept.
var hashtagPattern = regexp.MustCompile(`(?i)#[\w\x{00C0}-\x{024F}\x{1E00}-\x{1EFF}]+`)

// Epoch values above this are treated as millisecond timestamps.
const millisEpochThreshold = 10_000_000_000

// Post dates outside this year window are considered implausible and
// replaced with the current time.
const (
	minPlausibleYear = 2000
	maxPlausibleYear = 2030
)

// Extractor normalizes provider-specific raw payloads into
// platform-agnostic metrics records.
//
// Extraction is total: for any input, including a nil payload, it returns a
// metrics record with no missing fields and no negative numbers. Unusable
// values are logged and replaced with defaults rather than surfaced.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a metrics extractor.
func NewExtractor() *Extractor {
	return &Extractor{logger: slog.Default().With("component", "metrics-extractor")}
}

// Extract derives NormalizedMetrics from a tagged raw payload.
// A nil payload (fallback discovery paths carry none) yields zero-valued
// metrics with the post date set to now; this is expected, not an error.
func (e *Extractor) Extract(payload *core.RawPayload) core.NormalizedMetrics {
	m := core.NormalizedMetrics{
		PostDate: time.Now().UTC(),
		Hashtags: []string{},
	}

	if payload == nil || payload.Fields == nil {
		return m
	}
	fields := payload.Fields

	if payload.Platform == core.PlatformInstagram {
		m.Likes = intField(fields, "likesCount", "likes")
		m.Comments = intField(fields, "commentsCount", "comments")
		m.Views = intField(fields, "videoViewCount", "viewsCount")
		m.Author = stringField(fields, "ownerUsername", "username")
		m.AuthorFollowers = intField(fields, "ownerFollowersCount")
		m.Hashtags = unionHashtags(m.Hashtags, stringSliceField(fields, "hashtags"))

		if raw, ok := firstPresent(fields, "takenAtTimestamp", "timestamp"); ok {
			if ts, valid := e.normalizeTimestamp(raw); valid {
				m.PostDate = ts
			}
		}
	}

	if caption, ok := fields["caption"].(string); ok && caption != "" {
		mined := hashtagPattern.FindAllString(caption, -1)
		for i, tag := range mined {
			mined[i] = strings.TrimPrefix(tag, "#")
		}
		m.Hashtags = unionHashtags(m.Hashtags, mined)
	}

	return m
}

// normalizeTimestamp converts string or numeric epoch values to a time,
// rejecting anything unparseable or outside the plausible year window.
// Rejections are warnings, not errors: the post date then defaults to now.
func (e *Extractor) normalizeTimestamp(raw any) (time.Time, bool) {
	var ts time.Time

	switch v := raw.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			e.logger.Warn("unparseable post timestamp, using current time", "value", v)
			return time.Time{}, false
		}
		ts = parsed
	case float64:
		ts = epochToTime(int64(v))
	case int:
		ts = epochToTime(int64(v))
	case int64:
		ts = epochToTime(v)
	default:
		e.logger.Warn("unsupported post timestamp type, using current time", "value", raw)
		return time.Time{}, false
	}

	year := ts.Year()
	if year < minPlausibleYear || year > maxPlausibleYear {
		e.logger.Warn("implausible post timestamp, using current time", "value", raw, "year", year)
		return time.Time{}, false
	}
	return ts.UTC(), true
}

func epochToTime(v int64) time.Time {
	if v > millisEpochThreshold {
		return time.UnixMilli(v)
	}
	return time.Unix(v, 0)
}

// firstPresent returns the first non-nil value among the named fields.
func firstPresent(fields map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := fields[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// intField reads the first usable numeric value among the named fields,
// clamped to be non-negative. JSON decoding yields float64 for numbers;
// other numeric types and numeric strings are tolerated.
func intField(fields map[string]any, keys ...string) int {
	raw, ok := firstPresent(fields, keys...)
	if !ok {
		return 0
	}

	var n int
	switch v := raw.(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case int64:
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}

	if n < 0 {
		return 0
	}
	return n
}

func stringField(fields map[string]any, keys ...string) string {
	raw, ok := firstPresent(fields, keys...)
	if !ok {
		return ""
	}
	s, _ := raw.(string)
	return s
}

// stringSliceField copies a provider-supplied string array, tolerating the
// []any shape JSON decoding produces.
func stringSliceField(fields map[string]any, key string) []string {
	raw, ok := fields[key]
	if !ok {
		return nil
	}

	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// unionHashtags merges tag sets, dropping duplicates while preserving
// first-seen order.
func unionHashtags(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing)+len(extra))
	out := make([]string, 0, len(existing)+len(extra))
	for _, set := range [][]string{existing, extra} {
		for _, tag := range set {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}
