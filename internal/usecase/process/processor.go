// Package process orchestrates intent classification and constraint
// extraction into one immutable parsed-query value. Processing is total:
// a query with no recognizable structure yields an unknown intent, empty
// entities, empty keywords, and an empty filter, never an error.
package process

import (
	"regexp"
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain/query"
	"github.com/shelfwise/shelfwise/internal/domain/query/entities"
	"github.com/shelfwise/shelfwise/internal/domain/query/filter"
	"github.com/shelfwise/shelfwise/internal/domain/query/intent"
	"github.com/shelfwise/shelfwise/internal/usecase/classify"
	"github.com/shelfwise/shelfwise/internal/usecase/extract"
)

// minKeywordLen drops tokens of 2 characters or fewer.
const minKeywordLen = 3

var wordRe = regexp.MustCompile(`\w+`)

// stopWords covers articles, pronouns, auxiliary verbs, and the
// intent-trigger verbs that carry no content for retrieval.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "about": {}, "as": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "been": {}, "being": {}, "have": {}, "has": {},
	"had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"should": {}, "could": {}, "may": {}, "might": {}, "can": {}, "i": {},
	"you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"me": {}, "him": {}, "her": {}, "us": {}, "them": {},
	"find": {}, "search": {}, "looking": {}, "show": {}, "get": {},
	"want": {}, "need": {},
}

// Processor turns raw query strings into parsed queries.
type Processor struct {
	classifier *classify.Classifier
	extractor  *extract.Extractor
}

// New creates a Processor.
func New(classifier *classify.Classifier, extractor *extract.Extractor) *Processor {
	return &Processor{classifier: classifier, extractor: extractor}
}

// Process parses a natural-language query. Pure and deterministic:
// the same input always yields a field-for-field identical result.
func (p *Processor) Process(q string) query.Parsed {
	in, confidence := p.classifier.Classify(q)
	ents := p.extractor.Extract(q)
	keywords := extractKeywords(q)
	filters := buildFilters(ents)
	stats := buildStats(q, in, ents)

	return query.NewParsed(q, in, confidence, ents, keywords, filters, stats)
}

// extractKeywords tokenizes the lower-cased query and keeps
// content-bearing words: stop words and short tokens are dropped.
func extractKeywords(q string) []string {
	var keywords []string
	for _, word := range wordRe.FindAllString(strings.ToLower(q), -1) {
		if len(word) < minKeywordLen {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// buildFilters compiles present constraints into a filter expression.
// Single-valued store/genre constraints become equality conditions,
// multi-valued become set membership; ranges carry only the sides that
// are present. Keys are restricted to the whitelisted item attributes.
func buildFilters(ents entities.Entities) filter.Expression {
	b := filter.NewBuilder()

	if ents.PriceRange != nil {
		b.Range(filter.AttrPrice, ents.PriceRange.Min, ents.PriceRange.Max)
	}
	if ents.RatingRange != nil {
		b.Range(filter.AttrRating, ents.RatingRange.Min, ents.RatingRange.Max)
	}
	b.In(filter.AttrStoreID, ents.Stores)
	b.Match(filter.AttrFormatType, ents.Format)
	if ents.Availability != nil {
		if *ents.Availability {
			b.Match(filter.AttrAvailability, "true")
		} else {
			b.Match(filter.AttrAvailability, "false")
		}
	}
	b.In(filter.AttrGenre, ents.Genres)

	// Only whitelisted attribute constants reach the builder.
	return b.MustBuild()
}

func buildStats(q string, in intent.Intent, ents entities.Entities) query.Stats {
	return query.Stats{
		QueryLength:         len(q),
		WordCount:           len(strings.Fields(q)),
		HasPriceConstraint:  ents.PriceRange != nil,
		HasRatingConstraint: ents.RatingRange != nil,
		HasStorePreference:  len(ents.Stores) > 0,
		GenreCount:          len(ents.Genres),
		RequiresComparison:  in == intent.Comparison,
		RequiresAggregation: in == intent.Analytics,
	}
}
