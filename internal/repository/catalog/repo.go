// Package catalog persists books as Redis hashes and searches them via
// a RediSearch vector index. It backs both the ingest and retrieval
// usecases.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/db"
	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/book"
	"github.com/shelfwise/shelfwise/internal/domain/query/filter"
	"github.com/shelfwise/shelfwise/internal/usecase/ingest"
)

// store is the consumer interface for catalog operations (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
}

// Config holds catalog storage parameters.
type Config struct {
	IndexName       string
	KeyPrefix       string
	Dimensions      int
	HNSWM           int
	HNSWEFConstruct int
}

const (
	defaultIndexName = "shelfwise:books-idx"
	defaultKeyPrefix = "shelfwise:books:"
)

// Repo implements ingest.Repository and retrieve.Searcher.
type Repo struct {
	store    store
	embedder domain.Embedder
	cfg      Config
}

// New creates a catalog repository. Config fields left zero fall back
// to the package defaults; Dimensions must be set.
func New(s store, embedder domain.Embedder, cfg Config) (*Repo, error) {
	if cfg.Dimensions <= 0 {
		return nil, errors.New("catalog: embedding dimensions must be positive")
	}
	if cfg.IndexName == "" {
		cfg.IndexName = defaultIndexName
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}
	return &Repo{store: s, embedder: embedder, cfg: cfg}, nil
}

// EnsureIndex creates the books index unless it already exists.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.cfg.IndexName)
	if err != nil {
		return fmt.Errorf("check index %s: %w", r.cfg.IndexName, err)
	}
	if exists {
		return nil
	}

	if err := r.store.CreateIndex(ctx, indexDefinition(r.cfg)); err != nil {
		if errors.Is(err, db.ErrIndexExists) {
			return nil
		}
		return fmt.Errorf("create index %s: %w", r.cfg.IndexName, err)
	}
	return nil
}

// Upsert writes embedded books in a single pipelined round-trip.
func (r *Repo) Upsert(ctx context.Context, items []ingest.Item) error {
	if len(items) == 0 {
		return nil
	}

	hashes := make([]db.HashSetItem, len(items))
	for i, item := range items {
		if len(item.Embedding) != r.cfg.Dimensions {
			return fmt.Errorf("book %s: embedding has %d dimensions, index expects %d",
				item.ID, len(item.Embedding), r.cfg.Dimensions)
		}
		hashes[i] = db.HashSetItem{
			Key:    r.key(item.ID),
			Fields: encodeBook(item.Book, item.Embedding),
		}
	}

	if err := r.store.HSetMulti(ctx, hashes); err != nil {
		return fmt.Errorf("upsert books: %w", err)
	}
	return nil
}

// Get returns a stored book by ID.
func (r *Repo) Get(ctx context.Context, id string) (book.Book, error) {
	fields, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		return book.Book{}, fmt.Errorf("get book %s: %w", id, err)
	}
	if len(fields) == 0 {
		return book.Book{}, domain.ErrNotFound
	}
	return decodeBook(fields), nil
}

// Delete removes a stored book by ID.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, r.key(id)); err != nil {
		return fmt.Errorf("delete book %s: %w", id, err)
	}
	return nil
}

// Search embeds the query text and runs a filtered KNN search,
// decoding hits back into catalog books.
func (r *Repo) Search(ctx context.Context, text string, limit int, filters filter.Expression) ([]book.Hit, error) {
	emb, err := r.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	sr, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    r.cfg.IndexName,
		Filters:      filters,
		Vector:       emb.Embedding,
		K:            limit,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}

	hits := make([]book.Hit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		b := decodeBook(entry.Fields)
		hits = append(hits, book.Hit{
			ID:       strings.TrimPrefix(entry.Key, r.cfg.KeyPrefix),
			Score:    entry.Score,
			Book:     b,
			Document: b.Document(),
		})
	}
	return hits, nil
}

func (r *Repo) key(id string) string {
	return r.cfg.KeyPrefix + id
}
