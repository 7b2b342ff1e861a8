package retrieve

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/domain/book"
	"github.com/shelfwise/shelfwise/internal/domain/query/filter"
)

// Searcher runs a filtered nearest-neighbor query over the catalog.
// A query with no matches returns an empty slice, not an error.
type Searcher interface {
	Search(ctx context.Context, text string, limit int, filters filter.Expression) ([]book.Hit, error)
}
