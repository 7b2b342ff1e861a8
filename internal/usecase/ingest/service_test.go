package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/book"
)

// --- Mocks ---

type mockEmbedder struct {
	err      error
	gotTexts [][]string
}

func (m *mockEmbedder) BatchEmbed(_ context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	m.gotTexts = append(m.gotTexts, texts)
	if m.err != nil {
		return domain.BatchEmbeddingResult{}, m.err
	}
	embeddings := make([][]float32, len(texts))
	for i := range embeddings {
		embeddings[i] = []float32{0.1, 0.2}
	}
	return domain.BatchEmbeddingResult{Embeddings: embeddings}, nil
}

type mockRepo struct {
	err     error
	upserts [][]Item
}

func (m *mockRepo) Upsert(_ context.Context, items []Item) error {
	m.upserts = append(m.upserts, items)
	return m.err
}

// --- Helpers ---

func entries(ids ...string) []Entry {
	out := make([]Entry, len(ids))
	for i, id := range ids {
		out[i] = Entry{ID: id, Book: book.Book{Title: "t" + id, Author: "a", Genre: "fantasy", Price: 10}}
	}
	return out
}

// --- Tests ---

func TestIndex_BatchesBySize(t *testing.T) {
	emb := &mockEmbedder{}
	repo := &mockRepo{}
	svc := New(emb, repo, 2)

	sum := svc.Index(context.Background(), entries("1", "2", "3", "4", "5"))

	if sum.Indexed != 5 || sum.Failed != 0 {
		t.Errorf("summary = %+v", sum)
	}
	if len(emb.gotTexts) != 3 {
		t.Fatalf("embed calls = %d, want 3 batches", len(emb.gotTexts))
	}
	if len(emb.gotTexts[2]) != 1 {
		t.Errorf("last batch size = %d, want 1", len(emb.gotTexts[2]))
	}
	if len(repo.upserts) != 3 {
		t.Errorf("upsert calls = %d", len(repo.upserts))
	}
	if got := repo.upserts[0][0]; got.ID != "1" || len(got.Embedding) != 2 {
		t.Errorf("first item = %+v", got)
	}
}

func TestIndex_EmbedderFailureSkipsBatch(t *testing.T) {
	repo := &mockRepo{}
	svc := New(&mockEmbedder{err: errors.New("rate limited")}, repo, 10)

	sum := svc.Index(context.Background(), entries("1", "2"))

	if sum.Indexed != 0 || sum.Failed != 2 {
		t.Errorf("summary = %+v", sum)
	}
	if len(sum.Errors) != 1 || !strings.Contains(sum.Errors[0], "rate limited") {
		t.Errorf("errors = %v", sum.Errors)
	}
	if len(repo.upserts) != 0 {
		t.Error("failed batch must not reach the repository")
	}
}

func TestIndex_RepoFailureContinues(t *testing.T) {
	repo := &mockRepo{err: errors.New("write timeout")}
	svc := New(&mockEmbedder{}, repo, 1)

	sum := svc.Index(context.Background(), entries("1", "2"))

	if sum.Indexed != 0 || sum.Failed != 2 {
		t.Errorf("summary = %+v", sum)
	}
	if len(repo.upserts) != 2 {
		t.Errorf("upsert attempts = %d, want one per batch", len(repo.upserts))
	}
}

func TestIndex_RejectsMissingID(t *testing.T) {
	emb := &mockEmbedder{}
	svc := New(emb, &mockRepo{}, 10)

	sum := svc.Index(context.Background(), []Entry{
		{ID: "", Book: book.Book{Title: "no id"}},
		{ID: "1", Book: book.Book{Title: "ok"}},
	})

	if sum.Indexed != 1 || sum.Failed != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if len(emb.gotTexts) != 1 || len(emb.gotTexts[0]) != 1 {
		t.Errorf("invalid entry reached the embedder: %v", emb.gotTexts)
	}
}

func TestIndex_EmptyInput(t *testing.T) {
	svc := New(&mockEmbedder{}, &mockRepo{}, 10)

	sum := svc.Index(context.Background(), nil)

	if sum.Indexed != 0 || sum.Failed != 0 || len(sum.Errors) != 0 {
		t.Errorf("summary = %+v", sum)
	}
}
