// Package retrieve implements the intent-specific retrieval strategies.
// Each strategy issues at most one search call and post-processes the
// hits client-side; errors from the search collaborator propagate to
// the router, which converts them into failure envelopes.
package retrieve

import (
	"context"
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/book"
	"github.com/shelfwise/shelfwise/internal/domain/query"
	"github.com/shelfwise/shelfwise/internal/domain/query/filter"
)

const (
	defaultSearchLimit   = 10
	defaultFilterLimit   = 20
	comparisonCandidates = 50
	analyticsCandidates  = 100
	comparisonSamples    = 3
)

// Service executes retrieval strategies against a search collaborator.
// Safe for concurrent use when the underlying Searcher is.
type Service struct {
	searcher Searcher
}

// New creates a Service.
func New(searcher Searcher) *Service {
	return &Service{searcher: searcher}
}

// Search retrieves books matching the query's keywords, genres, and
// filters. Vector-similarity order is kept unless the query asked for
// an explicit sort, in which case hits are re-sorted client-side.
func (s *Service) Search(ctx context.Context, pq query.Parsed) ([]book.Hit, error) {
	limit := pq.Entities().Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	hits, err := s.searcher.Search(ctx, searchText(pq), limit, pq.Filters())
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	if key := pq.Entities().SortBy; key != "" {
		sortHits(hits, key)
	}
	return hits, nil
}

// Recommend retrieves twice the requested number of candidates and
// diversifies them so no single author or genre monopolizes the list.
func (s *Service) Recommend(ctx context.Context, pq query.Parsed) ([]book.Hit, error) {
	limit := pq.Entities().Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	hits, err := s.searcher.Search(ctx, recommendationText(pq), limit*2, pq.Filters())
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	return diversify(hits, limit), nil
}

// Compare retrieves candidates across all stores and summarizes them
// per store. Any extracted store constraint is deliberately dropped:
// a comparison that only sees one store is meaningless.
func (s *Service) Compare(ctx context.Context, pq query.Parsed) (Comparison, error) {
	filters := pq.Filters().Without(filter.AttrStoreID)

	hits, err := s.searcher.Search(ctx, searchText(pq), comparisonCandidates, filters)
	if err != nil {
		return Comparison{}, fmt.Errorf("compare: %w", err)
	}

	return compareStores(hits), nil
}

// Analyze retrieves a large sample under the query's filters and
// computes aggregate statistics. An empty sample is an error: "nothing
// matched" must not read as "zero of a measured quantity".
func (s *Service) Analyze(ctx context.Context, pq query.Parsed) (Analytics, error) {
	hits, err := s.searcher.Search(ctx, searchText(pq), analyticsCandidates, pq.Filters())
	if err != nil {
		return Analytics{}, fmt.Errorf("analyze: %w", err)
	}
	if len(hits) == 0 {
		return Analytics{}, domain.ErrNoAnalyticsData
	}

	return summarize(hits), nil
}

// Filter retrieves books where the extracted filter set, not the query
// semantics, is primary. Search text degrades to the literal "books"
// when no keywords survive.
func (s *Service) Filter(ctx context.Context, pq query.Parsed) ([]book.Hit, error) {
	text := strings.Join(pq.Keywords(), " ")
	if text == "" {
		text = "books"
	}

	limit := pq.Entities().Limit
	if limit <= 0 {
		limit = defaultFilterLimit
	}

	hits, err := s.searcher.Search(ctx, text, limit, pq.Filters())
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	return hits, nil
}

// Lookup retrieves the single best match for a query that names a
// specific book. Returns nil when nothing matches.
func (s *Service) Lookup(ctx context.Context, pq query.Parsed) (*book.Hit, error) {
	hits, err := s.searcher.Search(ctx, searchText(pq), 1, pq.Filters())
	if err != nil {
		return nil, fmt.Errorf("lookup: %w", err)
	}
	if len(hits) == 0 {
		return nil, nil
	}
	return &hits[0], nil
}

// triggerPhrases are stripped from the raw query when neither keywords
// nor genres produced any search text.
var triggerPhrases = []string{"looking for", "show me", "find", "search", "get", "want", "need"}

func searchText(pq query.Parsed) string {
	components := append([]string{}, pq.Keywords()...)
	components = append(components, pq.Entities().Genres...)
	if len(components) > 0 {
		return strings.Join(components, " ")
	}

	text := strings.ToLower(pq.Original())
	for _, phrase := range triggerPhrases {
		text = strings.ReplaceAll(text, phrase, "")
	}
	return strings.TrimSpace(text)
}

// recommendationTriggers carry no thematic signal and are excluded
// from recommendation search text.
var recommendationTriggers = map[string]struct{}{
	"book": {}, "books": {}, "recommend": {}, "suggest": {}, "similar": {},
}

func recommendationText(pq query.Parsed) string {
	components := append([]string{}, pq.Entities().Genres...)
	for _, kw := range pq.Keywords() {
		if _, skip := recommendationTriggers[kw]; skip {
			continue
		}
		components = append(components, kw)
	}
	if len(components) == 0 {
		return "popular books"
	}
	return strings.Join(components, " ")
}
