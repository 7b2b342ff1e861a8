package filter

// Builder is a fluent builder for filter expressions. Absent values are
// skipped rather than rejected, so callers compiling optional constraints
// stay total: an unset constraint simply adds no condition.
type Builder struct {
	conds []Condition
	err   error
}

// NewBuilder starts building a filter expression.
func NewBuilder() *Builder {
	return &Builder{}
}

// Match adds an exact match condition. No-op when value is empty.
func (b *Builder) Match(key, value string) *Builder {
	if b.err != nil || value == "" {
		return b
	}
	cond, err := NewMatch(key, value)
	if err != nil {
		b.err = err
		return b
	}
	b.conds = append(b.conds, cond)
	return b
}

// In adds a set-membership condition. No-op when values is empty; a
// single value collapses to an exact match.
func (b *Builder) In(key string, values []string) *Builder {
	if b.err != nil || len(values) == 0 {
		return b
	}
	if len(values) == 1 {
		return b.Match(key, values[0])
	}
	cond, err := NewIn(key, values)
	if err != nil {
		b.err = err
		return b
	}
	b.conds = append(b.conds, cond)
	return b
}

// Range adds a numeric range condition for the boundaries that are
// present. No-op when both sides are nil.
func (b *Builder) Range(key string, gte, lte *float64) *Builder {
	if b.err != nil || (gte == nil && lte == nil) {
		return b
	}
	r, err := NewRangeBounds(gte, lte)
	if err != nil {
		b.err = err
		return b
	}
	cond, err := NewRange(key, r)
	if err != nil {
		b.err = err
		return b
	}
	b.conds = append(b.conds, cond)
	return b
}

// Build returns the accumulated expression.
func (b *Builder) Build() (Expression, error) {
	if b.err != nil {
		return Expression{}, b.err
	}
	return Expression{conds: b.conds}, nil
}

// MustBuild calls Build and panics on error. Safe for callers using only
// the whitelisted Attr* constants.
func (b *Builder) MustBuild() Expression {
	expr, err := b.Build()
	if err != nil {
		panic(err)
	}
	return expr
}
