// Package extract parses raw query strings into structured constraints.
// Extraction is a total function: every sub-extractor returns its zero
// signal when nothing matches, and nothing here can fail.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain/query/entities"
)

// defaultStores is the canonical store list assumed when no catalog
// configuration is supplied.
var defaultStores = []string{"store_a", "store_b"}

// Extractor extracts entities and parameters from queries. The
// configured store list bounds what "all stores" expands to, so the
// extractor generalizes past a fixed two-store catalog.
type Extractor struct {
	storeIDs []string
}

// New creates an Extractor for the given canonical store identifiers.
// An empty list falls back to the two-store default.
func New(storeIDs []string) *Extractor {
	if len(storeIDs) == 0 {
		storeIDs = defaultStores
	}
	return &Extractor{storeIDs: storeIDs}
}

// Extract parses the query into a flat entity set. Each sub-extraction
// is independent and order-insensitive.
func (e *Extractor) Extract(query string) entities.Entities {
	q := strings.ToLower(strings.TrimSpace(query))

	return entities.Entities{
		Genres:       extractGenres(q),
		PriceRange:   extractPriceRange(q),
		RatingRange:  extractRatingRange(q),
		Stores:       e.extractStores(q),
		Format:       extractFormat(q),
		Availability: extractAvailability(q),
		SortBy:       extractSortKey(q),
		Limit:        extractLimit(q),
	}
}

// extractGenres includes a genre once if any of its synonyms appears.
func extractGenres(q string) []string {
	var found []string
	for _, g := range genreTable {
		for _, kw := range g.keywords {
			if strings.Contains(q, kw) {
				found = append(found, g.canonical)
				break
			}
		}
	}
	return found
}

func extractPriceRange(q string) *entities.Range {
	var r entities.Range

	if m := priceUnderRe.FindStringSubmatch(q); m != nil {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			r.Max = &v
		}
	}
	if m := priceOverRe.FindStringSubmatch(q); m != nil {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			r.Min = &v
		}
	}
	// "between $N and $M" overrides any single-sided match.
	if m := priceBetweenRe.FindStringSubmatch(q); m != nil {
		lo, errLo := strconv.ParseFloat(m[1], 64)
		hi, errHi := strconv.ParseFloat(m[2], 64)
		if errLo == nil && errHi == nil {
			r.Min, r.Max = &lo, &hi
		}
	}

	if r.Min == nil && r.Max == nil {
		return nil
	}
	return &r
}

func extractRatingRange(q string) *entities.Range {
	var r entities.Range

	if m := ratedAboveRe.FindStringSubmatch(q); m != nil {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			r.Min = &v
		}
	}
	if m := ratedBelowRe.FindStringSubmatch(q); m != nil {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			r.Max = &v
		}
	}
	// Fixed business rule, not user-tunable.
	if strings.Contains(q, "highly rated") || strings.Contains(q, "high rating") {
		v := highlyRatedMin
		r.Min = &v
	}

	if r.Min == nil && r.Max == nil {
		return nil
	}
	return &r
}

// extractStores normalizes "store <letter>" mentions to canonical
// store_<letter> identifiers. "both stores"/"all stores" overrides with
// the full configured store list.
func (e *Extractor) extractStores(q string) []string {
	if strings.Contains(q, "both stores") || strings.Contains(q, "all stores") {
		out := make([]string, len(e.storeIDs))
		copy(out, e.storeIDs)
		return out
	}

	var stores []string
	seen := make(map[string]bool)
	for _, m := range storeRe.FindAllStringSubmatch(q, -1) {
		id := "store_" + m[2]
		if !seen[id] {
			seen[id] = true
			stores = append(stores, id)
		}
	}
	return stores
}

func extractFormat(q string) string {
	for _, f := range formatTable {
		for _, kw := range f.keywords {
			if strings.Contains(q, kw) {
				return f.canonical
			}
		}
	}
	return ""
}

// extractAvailability returns nil when the query has no opinion.
// Negative phrases are checked first: "unavailable" contains the
// substring "available" and must not read as a positive signal.
func extractAvailability(q string) *bool {
	no := false
	yes := true

	for _, phrase := range []string{"out of stock", "unavailable"} {
		if strings.Contains(q, phrase) {
			return &no
		}
	}
	for _, phrase := range []string{"in stock", "available"} {
		if strings.Contains(q, phrase) {
			return &yes
		}
	}
	return nil
}

func extractSortKey(q string) entities.SortKey {
	for _, rule := range sortTable {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.key
			}
		}
	}
	return ""
}

// extractLimit tries "top N", "N books", "first N" in order; the first
// match wins. Non-positive captures are ignored.
func extractLimit(q string) int {
	for _, re := range []*regexp.Regexp{limitTopRe, limitBooksRe, limitFirstRe} {
		if m := re.FindStringSubmatch(q); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}
