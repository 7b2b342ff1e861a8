// Package entities holds the structured constraints extracted from a query.
package entities

// SortKey is a client-side result ordering preference.
type SortKey string

// Supported sort keys.
const (
	PriceAsc   SortKey = "price_asc"
	PriceDesc  SortKey = "price_desc"
	RatingDesc SortKey = "rating_desc"
	YearDesc   SortKey = "year_desc"
	YearAsc    SortKey = "year_asc"
)

// Range is a one- or two-sided numeric bound. A nil side is unconstrained.
type Range struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Entities is the flat set of constraints found in a query. Every field
// is optional: a nil/empty/zero field means "no signal found", which the
// caller must treat as unconstrained, not as a zero-value constraint.
type Entities struct {
	Genres      []string `json:"genres,omitempty"`
	PriceRange  *Range   `json:"price_range,omitempty"`
	RatingRange *Range   `json:"rating_range,omitempty"`
	// Authors is reserved: the extractor never populates it today.
	Authors      []string `json:"authors,omitempty"`
	Stores       []string `json:"stores,omitempty"`
	Format       string   `json:"format,omitempty"`
	Availability *bool    `json:"availability,omitempty"`
	SortBy       SortKey  `json:"sort_by,omitempty"`
	Limit        int      `json:"limit,omitempty"`
}
