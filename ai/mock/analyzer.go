package mock

import (
	"context"
	"sync"

	"github.com/poiesic/viralscope/ai"
	"github.com/poiesic/viralscope/core"
)

// MockAnalyzer is a test double for ai.Analyzer.
// It allows custom behavior injection via function fields.
type MockAnalyzer struct {
	// AnalyzeFunc is called by Analyze if set.
	// If nil, a fixed mid-range analysis is returned.
	AnalyzeFunc func(ctx context.Context, candidate *core.Candidate) (*ai.Analysis, error)

	mu        sync.Mutex
	callCount int
}

var _ ai.Analyzer = (*MockAnalyzer)(nil)

// NewMockAnalyzer creates a mock analyzer with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

// Analyze returns an injected or fixed analysis.
// Default behavior: a deterministic mid-range estimate derived from nothing,
// so scoring tests remain stable.
func (m *MockAnalyzer) Analyze(ctx context.Context, candidate *core.Candidate) (*ai.Analysis, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, candidate)
	}

	title := ""
	description := ""
	if candidate != nil {
		title = candidate.Title
		description = candidate.Description
	}

	return &ai.Analysis{
		EstimatedLikes:     500,
		EstimatedComments:  50,
		EstimatedShares:    25,
		EstimatedViews:     5000,
		EstimatedFollowers: 2500,
		EngagementScore:    50,
		ContentQuality:     60,
		ViralFactors:       []string{"mock analysis"},
		SuggestedTitle:     title,
		Description:        description,
		Author:             "mock_author",
		Hashtags:           []string{},
	}, nil
}

// CallCount returns the number of times Analyze was called.
func (m *MockAnalyzer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
