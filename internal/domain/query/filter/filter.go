// Package filter defines the retrieval-filter expression passed to the
// semantic search collaborator. Conditions are keyed by a fixed whitelist
// of item attributes so the collaborator's supported surface stays bounded.
package filter

import "fmt"

// Attribute keys the search collaborator understands.
const (
	AttrPrice        = "price"
	AttrRating       = "rating"
	AttrStoreID      = "store_id"
	AttrFormatType   = "format_type"
	AttrAvailability = "availability"
	AttrGenre        = "genre"
)

// allowedAttrs is the closed set of filterable item attributes.
var allowedAttrs = map[string]struct{}{
	AttrPrice:        {},
	AttrRating:       {},
	AttrStoreID:      {},
	AttrFormatType:   {},
	AttrAvailability: {},
	AttrGenre:        {},
}

// IsAllowedAttr reports whether key is a filterable item attribute.
func IsAllowedAttr(key string) bool {
	_, ok := allowedAttrs[key]
	return ok
}

// Expression is a conjunction of conditions over item attributes.
type Expression struct {
	conds []Condition
}

// NewExpression creates a filter Expression from validated conditions.
func NewExpression(conds ...Condition) Expression {
	return Expression{conds: conds}
}

// Conditions returns the conditions in construction order.
func (e Expression) Conditions() []Condition { return e.conds }

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool { return len(e.conds) == 0 }

// Has reports whether the expression constrains the given attribute.
func (e Expression) Has(key string) bool {
	for _, c := range e.conds {
		if c.key == key {
			return true
		}
	}
	return false
}

// Without returns a copy of the expression with all conditions on the
// given attribute removed.
func (e Expression) Without(key string) Expression {
	if !e.Has(key) {
		return e
	}
	kept := make([]Condition, 0, len(e.conds))
	for _, c := range e.conds {
		if c.key != key {
			kept = append(kept, c)
		}
	}
	return Expression{conds: kept}
}

// Condition is a single filter clause: an exact match, a set membership,
// or a numeric range over one whitelisted attribute.
type Condition struct {
	key       string
	match     string
	in        []string
	rangeExpr *Range
}

// NewMatch creates an exact match condition.
func NewMatch(key, match string) (Condition, error) {
	if !IsAllowedAttr(key) {
		return Condition{}, fmt.Errorf("attribute %q is not filterable", key)
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, match: match}, nil
}

// NewIn creates a set-membership condition.
func NewIn(key string, values []string) (Condition, error) {
	if !IsAllowedAttr(key) {
		return Condition{}, fmt.Errorf("attribute %q is not filterable", key)
	}
	if len(values) == 0 {
		return Condition{}, fmt.Errorf("at least one value is required for key %q", key)
	}
	for _, v := range values {
		if v == "" {
			return Condition{}, fmt.Errorf("empty value in set for key %q", key)
		}
	}
	return Condition{key: key, in: values}, nil
}

// NewRange creates a numeric range condition.
func NewRange(key string, r Range) (Condition, error) {
	if !IsAllowedAttr(key) {
		return Condition{}, fmt.Errorf("attribute %q is not filterable", key)
	}
	return Condition{key: key, rangeExpr: &r}, nil
}

// Key returns the attribute name.
func (c Condition) Key() string { return c.key }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }

// In returns the set-membership values.
func (c Condition) In() []string { return c.in }

// Range returns the numeric range expression.
func (c Condition) Range() *Range { return c.rangeExpr }

// IsMatch reports whether this is an exact match condition.
func (c Condition) IsMatch() bool { return c.match != "" }

// IsIn reports whether this is a set-membership condition.
func (c Condition) IsIn() bool { return len(c.in) > 0 }

// IsRange reports whether this is a numeric range condition.
func (c Condition) IsRange() bool { return c.rangeExpr != nil }

// Range is a numeric range with inclusive gte/lte boundaries. These are
// the only comparison operators the search collaborator supports.
type Range struct {
	gte *float64
	lte *float64
}

// NewRangeBounds validates and creates a Range. At least one boundary is required.
func NewRangeBounds(gte, lte *float64) (Range, error) {
	if gte == nil && lte == nil {
		return Range{}, fmt.Errorf("at least one range boundary is required")
	}
	return Range{gte: gte, lte: lte}, nil
}

// GTE returns the lower inclusive bound.
func (r Range) GTE() *float64 { return r.gte }

// LTE returns the upper inclusive bound.
func (r Range) LTE() *float64 { return r.lte }
