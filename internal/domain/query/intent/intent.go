// Package intent defines the closed set of query behaviors.
package intent

// Intent is the behavioral category a free-text query is classified into.
type Intent string

// Supported intents.
const (
	// Search finds specific books.
	Search Intent = "search"
	// Recommendation suggests books by genre and theme.
	Recommendation Intent = "recommendation"
	// Comparison compares stores by price and rating.
	Comparison Intent = "comparison"
	// Analytics computes aggregate statistics over matching books.
	Analytics Intent = "analytics"
	// Filter retrieves by structured constraints only.
	Filter Intent = "filter"
	// Information looks up a single, identifiable book.
	Information Intent = "information"
	// Unknown is both a valid low-confidence classification result and
	// the sentinel routers must handle gracefully.
	Unknown Intent = "unknown"
)

// All returns the classifiable intents in fixed priority order.
// Classification ties break toward the earlier entry.
func All() []Intent {
	return []Intent{Search, Recommendation, Comparison, Analytics, Filter, Information}
}

// IsValid checks if the intent is one of the supported values.
func (i Intent) IsValid() bool {
	switch i {
	case Search, Recommendation, Comparison, Analytics, Filter, Information, Unknown:
		return true
	}
	return false
}
