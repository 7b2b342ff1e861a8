// Package query defines the immutable parsed-query value produced once
// per incoming string and discarded after routing.
package query

import (
	"github.com/shelfwise/shelfwise/internal/domain/query/entities"
	"github.com/shelfwise/shelfwise/internal/domain/query/filter"
	"github.com/shelfwise/shelfwise/internal/domain/query/intent"
)

// Parsed is the structured representation of one natural-language query.
// Entities, keywords, and filters are pure functions of the original
// string: re-parsing the same input yields an identical value.
type Parsed struct {
	original    string
	queryIntent intent.Intent
	confidence  float64
	entities    entities.Entities
	keywords    []string
	filters     filter.Expression
	stats       Stats
}

// NewParsed assembles a parsed query.
func NewParsed(
	original string,
	in intent.Intent,
	confidence float64,
	ents entities.Entities,
	keywords []string,
	filters filter.Expression,
	stats Stats,
) Parsed {
	return Parsed{
		original:    original,
		queryIntent: in,
		confidence:  confidence,
		entities:    ents,
		keywords:    keywords,
		filters:     filters,
		stats:       stats,
	}
}

// Original returns the verbatim input, preserved for diagnostics and
// fallback text search.
func (p Parsed) Original() string { return p.original }

// Intent returns the classified intent.
func (p Parsed) Intent() intent.Intent { return p.queryIntent }

// Confidence returns the classifier's belief in the intent, in [0,1].
func (p Parsed) Confidence() float64 { return p.confidence }

// Entities returns the extracted constraints.
func (p Parsed) Entities() entities.Entities { return p.entities }

// Keywords returns the content-bearing tokens, stop words removed.
func (p Parsed) Keywords() []string { return p.keywords }

// Filters returns the retrieval-filter expression compiled from entities.
func (p Parsed) Filters() filter.Expression { return p.filters }

// Stats returns derived diagnostics about the query.
func (p Parsed) Stats() Stats { return p.stats }

// Stats is derived diagnostics: sizes, constraint presence flags, and
// whether the intent needs comparison or aggregation semantics.
type Stats struct {
	QueryLength         int  `json:"query_length"`
	WordCount           int  `json:"word_count"`
	HasPriceConstraint  bool `json:"has_price_constraint"`
	HasRatingConstraint bool `json:"has_rating_constraint"`
	HasStorePreference  bool `json:"has_store_preference"`
	GenreCount          int  `json:"genre_count"`
	RequiresComparison  bool `json:"requires_comparison"`
	RequiresAggregation bool `json:"requires_aggregation"`
}
