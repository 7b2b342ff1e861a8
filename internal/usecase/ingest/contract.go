package ingest

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/domain/book"
)

// Item is one embedded book ready for storage.
type Item struct {
	ID        string
	Book      book.Book
	Embedding []float32
}

// Repository persists embedded books into the search index.
type Repository interface {
	Upsert(ctx context.Context, items []Item) error
}
