package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrNoHandler signals a routed intent without a registered handler.
	ErrNoHandler = errors.New("no handler registered")
	// ErrNoAnalyticsData signals an analytics query that matched no books.
	// Distinct from zero-valued statistics: nothing was measured at all.
	ErrNoAnalyticsData = errors.New("no books found for analytics")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)
