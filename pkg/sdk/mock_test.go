package shelfwise

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/domain/book"
	healthuc "github.com/shelfwise/shelfwise/internal/usecase/health"
	ingestuc "github.com/shelfwise/shelfwise/internal/usecase/ingest"
	"github.com/shelfwise/shelfwise/internal/usecase/route"
)

// --- Mocks ---

type mockEmbedder struct {
	fn func(ctx context.Context, text string) (EmbeddingResult, error)
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) (EmbeddingResult, error) {
	if m.fn != nil {
		return m.fn(ctx, text)
	}
	return EmbeddingResult{Embedding: []float32{0.1, 0.2}}, nil
}

type mockBatchEmbedder struct {
	mockEmbedder
	batchFn func(ctx context.Context, texts []string) (BatchEmbeddingResult, error)
}

func (m *mockBatchEmbedder) BatchEmbed(ctx context.Context, texts []string) (BatchEmbeddingResult, error) {
	if m.batchFn != nil {
		return m.batchFn(ctx, texts)
	}
	embeddings := make([][]float32, len(texts))
	for i := range texts {
		embeddings[i] = []float32{0.1, 0.2}
	}
	return BatchEmbeddingResult{Embeddings: embeddings}, nil
}

type mockQuerier struct {
	env route.Envelope
}

func (m *mockQuerier) Route(_ context.Context, _ string) route.Envelope {
	return m.env
}

type mockIngester struct {
	gotEntries []ingestuc.Entry
	summary    ingestuc.Summary
}

func (m *mockIngester) Index(_ context.Context, entries []ingestuc.Entry) ingestuc.Summary {
	m.gotEntries = entries
	return m.summary
}

type mockBookStore struct {
	getFn    func(ctx context.Context, id string) (book.Book, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockBookStore) Get(ctx context.Context, id string) (book.Book, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return book.Book{}, nil
}

func (m *mockBookStore) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(_ context.Context) healthuc.Report {
	return m.report
}
