package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs. It is used for
// candidates whose provider assigns no identifier of its own.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Platform identifies a supported social media platform.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// SearchStatus is the lifecycle state of a SearchRecord.
// Transitions: pending -> processing -> completed | failed.
type SearchStatus string

const (
	StatusPending    SearchStatus = "pending"
	StatusProcessing SearchStatus = "processing"
	StatusCompleted  SearchStatus = "completed"
	StatusFailed     SearchStatus = "failed"
)

// Default values applied when neither real metrics nor AI estimates
// provide a field.
const (
	// DefaultTitle replaces an empty candidate title on accepted images.
	DefaultTitle = "Viral Content"

	// DefaultAuthor replaces an empty author on accepted images.
	DefaultAuthor = "Unknown"

	// ExcludedAuthor is a placeholder excluded from top-author rankings,
	// inherited from the source system. It is distinct from DefaultAuthor,
	// which accepted images actually carry and which does rank.
	ExcludedAuthor = "unknown_creator"
)

// Request limits and defaults.
const (
	MaxImagesLimit     = 50
	DefaultMaxImages   = 20
	DefaultRecentLimit = 20
)

// SearchRequest is the validated, immutable input to one search run.
type SearchRequest struct {
	Query         string     `json:"query"`
	MaxImages     int        `json:"max_images"`
	MinEngagement int        `json:"min_engagement"`
	Platforms     []Platform `json:"platforms"`
}

// SearchRecord tracks the lifecycle and outcome of one search run.
// It is created in processing state and finalized exactly once.
type SearchRecord struct {
	Id           ID           `json:"id"`
	Query        string       `json:"query"`
	Status       SearchStatus `json:"status"`
	TotalResults int          `json:"total_results"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
}

// RawPayload carries a provider's opaque response item, tagged with the
// platform it came from so extraction can dispatch on it.
type RawPayload struct {
	Platform Platform
	Fields   map[string]any
}

// Candidate is a discovered, not-yet-scored post returned by platform
// discovery. It is transient and never persisted.
type Candidate struct {
	ProviderID  string
	ImageURL    string
	PostURL     string
	Title       string
	Description string
	Platform    Platform
	Raw         *RawPayload // nil for fallback discovery paths
}

// NormalizedMetrics holds platform-agnostic engagement facts extracted from
// a candidate's raw payload. All numeric fields are non-negative.
type NormalizedMetrics struct {
	Views           int
	Likes           int
	Comments        int
	Shares          int
	Author          string
	AuthorFollowers int
	PostDate        time.Time
	Hashtags        []string
}

// ViralImage is the persisted output entity: a candidate's display fields
// combined with real or estimated engagement counts and a computed score.
// It is immutable after creation.
type ViralImage struct {
	Id               ID        `json:"id"`
	SearchId         ID        `json:"search_id"`
	ImageURL         string    `json:"image_url"`
	PostURL          string    `json:"post_url"`
	Platform         Platform  `json:"platform"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	EngagementScore  int       `json:"engagement_score"`
	ViewsEstimate    int       `json:"views_estimate"`
	LikesEstimate    int       `json:"likes_estimate"`
	CommentsEstimate int       `json:"comments_estimate"`
	SharesEstimate   int       `json:"shares_estimate"`
	Author           string    `json:"author"`
	AuthorFollowers  int       `json:"author_followers"`
	PostDate         time.Time `json:"post_date"`
	Hashtags         []string  `json:"hashtags"`
	CreatedAt        time.Time `json:"created_at"`
}

// AuthorStat is one entry in a Summary's top-author ranking.
type AuthorStat struct {
	Author     string `json:"author"`
	Followers  int    `json:"followers"`
	PostsCount int    `json:"posts_count"`
}

// Summary holds derived aggregate statistics over an accepted image set.
// It is recomputed on every read and never persisted.
type Summary struct {
	TotalImages          int              `json:"total_images"`
	AvgEngagement        float64          `json:"avg_engagement"`
	PlatformDistribution map[Platform]int `json:"platform_distribution"`
	TopAuthors           []AuthorStat     `json:"top_authors"`
}

// SearchResults is the public aggregate returned for a search:
// the record, its ranked images, and the recomputed summary.
type SearchResults struct {
	Search  *SearchRecord `json:"search"`
	Images  []*ViralImage `json:"images"`
	Summary *Summary      `json:"summary"`
}
