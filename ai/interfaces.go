package ai

import (
	"context"

	"github.com/poiesic/viralscope/core"
)

// Analyzer enriches a discovered candidate with estimated engagement metrics
// and content metadata. Implementations must be thread-safe for concurrent use.
type Analyzer interface {
	// Analyze produces an Analysis for the candidate.
	// Implementations backed by remote inference may fail; callers are
	// expected to degrade to a fallback Analysis so the pipeline always
	// has a usable estimate.
	Analyze(ctx context.Context, candidate *core.Candidate) (*Analysis, error)
}
