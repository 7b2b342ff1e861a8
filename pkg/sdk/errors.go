package shelfwise

import "github.com/shelfwise/shelfwise/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound               = domain.ErrNotFound
	ErrNoHandler              = domain.ErrNoHandler
	ErrNoAnalyticsData        = domain.ErrNoAnalyticsData
	ErrEmbeddingProviderError = domain.ErrEmbeddingProviderError
)
