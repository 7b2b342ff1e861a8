// Package answer turns retrieval payloads into human-readable text and
// binds one handler per classifiable intent on the query router.
package answer

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/domain/book"
	"github.com/shelfwise/shelfwise/internal/domain/query"
	"github.com/shelfwise/shelfwise/internal/domain/query/intent"
	"github.com/shelfwise/shelfwise/internal/usecase/retrieve"
	"github.com/shelfwise/shelfwise/internal/usecase/route"
)

// Result pairs the rendered answer with the structured payload it was
// rendered from. Exactly one of the payload fields is set per intent.
type Result struct {
	Answer     string               `json:"answer"`
	Books      []book.Hit           `json:"books,omitempty"`
	Book       *book.Hit            `json:"book,omitempty"`
	Comparison *retrieve.Comparison `json:"comparison,omitempty"`
	Analytics  *retrieve.Analytics  `json:"analytics,omitempty"`
}

// Service renders answers on top of the retrieval strategies.
type Service struct {
	retriever *retrieve.Service
}

// New creates a Service.
func New(retriever *retrieve.Service) *Service {
	return &Service{retriever: retriever}
}

// RegisterAll binds a handler for every classifiable intent. Must be
// called before the router serves its first query.
func (s *Service) RegisterAll(r *route.Router) {
	r.Register(intent.Search, s.Search)
	r.Register(intent.Recommendation, s.Recommend)
	r.Register(intent.Comparison, s.Compare)
	r.Register(intent.Analytics, s.Analyze)
	r.Register(intent.Filter, s.Filter)
	r.Register(intent.Information, s.Lookup)
}

// Search handles search-intent queries.
func (s *Service) Search(ctx context.Context, pq query.Parsed) (any, error) {
	hits, err := s.retriever.Search(ctx, pq)
	if err != nil {
		return nil, err
	}
	return Result{Answer: renderSearch(pq.Original(), hits), Books: hits}, nil
}

// Recommend handles recommendation-intent queries.
func (s *Service) Recommend(ctx context.Context, pq query.Parsed) (any, error) {
	hits, err := s.retriever.Recommend(ctx, pq)
	if err != nil {
		return nil, err
	}
	return Result{Answer: renderRecommendations(hits), Books: hits}, nil
}

// Compare handles comparison-intent queries.
func (s *Service) Compare(ctx context.Context, pq query.Parsed) (any, error) {
	cmp, err := s.retriever.Compare(ctx, pq)
	if err != nil {
		return nil, err
	}
	return Result{Answer: renderComparison(cmp), Comparison: &cmp}, nil
}

// Analyze handles analytics-intent queries. An empty sample propagates
// as an error so the router reports it instead of zeroed statistics.
func (s *Service) Analyze(ctx context.Context, pq query.Parsed) (any, error) {
	an, err := s.retriever.Analyze(ctx, pq)
	if err != nil {
		return nil, err
	}
	return Result{Answer: renderAnalytics(an), Analytics: &an}, nil
}

// Filter handles filter-intent queries.
func (s *Service) Filter(ctx context.Context, pq query.Parsed) (any, error) {
	hits, err := s.retriever.Filter(ctx, pq)
	if err != nil {
		return nil, err
	}
	return Result{Answer: renderFiltered(hits, pq.Filters()), Books: hits}, nil
}

// Lookup handles information-intent queries.
func (s *Service) Lookup(ctx context.Context, pq query.Parsed) (any, error) {
	hit, err := s.retriever.Lookup(ctx, pq)
	if err != nil {
		return nil, err
	}
	return Result{Answer: renderInformation(hit), Book: hit}, nil
}
