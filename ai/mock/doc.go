// Package mock provides test double implementations of the ai interfaces.
//
// MockAnalyzer lets tests run the pipeline without an inference service and
// inject controlled behavior:
//
//	analyzer := mock.NewMockAnalyzer()
//	analyzer.AnalyzeFunc = func(ctx context.Context, c *core.Candidate) (*ai.Analysis, error) {
//	    return nil, errors.New("inference down")
//	}
//	count := analyzer.CallCount()
package mock
