// Package ingest embeds and indexes catalog books in batches.
package ingest

import (
	"context"
	"fmt"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/book"
)

const defaultBatchSize = 50

// Entry is one book submitted for indexing.
type Entry struct {
	ID   string
	Book book.Book
}

// Summary reports the outcome of one indexing run. A failed batch
// contributes its size to Failed and one message to Errors; the run
// continues with the next batch.
type Summary struct {
	Indexed int      `json:"indexed"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// Service embeds book documents and writes them to the repository.
type Service struct {
	embedder  domain.BatchEmbedder
	repo      Repository
	batchSize int
}

// New creates a Service. batchSize <= 0 selects the default.
func New(embedder domain.BatchEmbedder, repo Repository, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Service{embedder: embedder, repo: repo, batchSize: batchSize}
}

// Index embeds and stores the given entries batch by batch. Entries
// without an ID fail validation up front and are excluded from the
// embedding calls. Index never returns an error: partial failure is
// reported through the summary.
func (s *Service) Index(ctx context.Context, entries []Entry) Summary {
	var summary Summary

	valid := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			summary.Failed++
			summary.Errors = append(summary.Errors, "entry without id rejected")
			continue
		}
		valid = append(valid, e)
	}

	for start := 0; start < len(valid); start += s.batchSize {
		end := start + s.batchSize
		if end > len(valid) {
			end = len(valid)
		}
		batch := valid[start:end]

		if err := s.indexBatch(ctx, batch); err != nil {
			summary.Failed += len(batch)
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}
		summary.Indexed += len(batch)
	}

	return summary
}

func (s *Service) indexBatch(ctx context.Context, batch []Entry) error {
	texts := make([]string, len(batch))
	for i, e := range batch {
		texts[i] = e.Book.Document()
	}

	res, err := s.embedder.BatchEmbed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed batch: %w", err)
	}
	if len(res.Embeddings) != len(batch) {
		return fmt.Errorf("embed batch: got %d embeddings for %d books", len(res.Embeddings), len(batch))
	}

	items := make([]Item, len(batch))
	for i, e := range batch {
		items[i] = Item{ID: e.ID, Book: e.Book, Embedding: res.Embeddings[i]}
	}

	if err := s.repo.Upsert(ctx, items); err != nil {
		return fmt.Errorf("upsert batch: %w", err)
	}
	return nil
}
