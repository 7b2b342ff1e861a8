package shelfwise

import (
	"context"
	"errors"
	"fmt"
	"time"

	dbRedis "github.com/shelfwise/shelfwise/internal/db/redis"
	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/book"
	"github.com/shelfwise/shelfwise/internal/repository/catalog"
	"github.com/shelfwise/shelfwise/internal/usecase/answer"
	"github.com/shelfwise/shelfwise/internal/usecase/classify"
	"github.com/shelfwise/shelfwise/internal/usecase/extract"
	healthuc "github.com/shelfwise/shelfwise/internal/usecase/health"
	ingestuc "github.com/shelfwise/shelfwise/internal/usecase/ingest"
	"github.com/shelfwise/shelfwise/internal/usecase/process"
	"github.com/shelfwise/shelfwise/internal/usecase/retrieve"
	"github.com/shelfwise/shelfwise/internal/usecase/route"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultDimensions       = 1536
)

// Internal interfaces so tests can substitute the pipeline.
type querier interface {
	Route(ctx context.Context, rawQuery string) route.Envelope
}

type ingester interface {
	Index(ctx context.Context, entries []ingestuc.Entry) ingestuc.Summary
}

type bookStore interface {
	Get(ctx context.Context, id string) (book.Book, error)
	Delete(ctx context.Context, id string) error
}

type pinger interface {
	Ping(ctx context.Context) error
	Close()
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the shelfwise SDK entry point.
type Client struct {
	store     pinger
	router    querier
	ingestSvc ingester
	books     bookStore
	healthSvc healthUseCase
	obs       *observer
}

// New creates a shelfwise Client and connects to Redis.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		dimensions: defaultDimensions,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("shelfwise: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("shelfwise: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("shelfwise: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}

	client, err := wireClient(ctx, store, cfg, obs)
	if err != nil {
		store.Close()
		return nil, err
	}
	return client, nil
}

func wireClient(ctx context.Context, store *dbRedis.Store, cfg *clientConfig, obs *observer) (*Client, error) {
	// Embedder: noop unless configured, so Query and IndexBooks fail
	// with a clear message instead of a nil dereference.
	var domEmb domain.Embedder = &noopEmbedder{}
	if cfg.embedder != nil {
		domEmb = &embedderAdapter{inner: cfg.embedder}
	}

	books, err := catalog.New(store, domEmb, catalog.Config{
		IndexName:       cfg.indexName,
		KeyPrefix:       cfg.keyPrefix,
		Dimensions:      cfg.dimensions,
		HNSWM:           cfg.hnswM,
		HNSWEFConstruct: cfg.hnswEFConstruct,
	})
	if err != nil {
		return nil, fmt.Errorf("shelfwise: create catalog: %w", err)
	}
	if err := books.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("shelfwise: ensure index: %w", err)
	}

	processor := process.New(classify.New(), extract.New(cfg.stores))
	router := route.New(processor)
	answer.New(retrieve.New(books)).RegisterAll(router)

	return &Client{
		store:     store,
		router:    router,
		ingestSvc: ingestuc.New(&batchAdapter{inner: domEmb}, books, cfg.batchSize),
		books:     books,
		healthSvc: healthuc.New(store, nil),
		obs:       obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Query runs a natural-language query through the full pipeline.
// The response carries the classified intent and parsed constraints
// even when retrieval failed; the error mirrors Response handling.
func (c *Client) Query(ctx context.Context, text string) (QueryResponse, error) {
	start := time.Now()

	env := c.router.Route(ctx, text)
	c.obs.observe("query", start, env.Err)

	resp := QueryResponse{
		Success:    env.Success,
		Intent:     string(env.Parsed.Intent()),
		Confidence: env.Parsed.Confidence(),
		Keywords:   env.Parsed.Keywords(),
	}

	if res, ok := env.Result.(*answer.Result); ok {
		resp.Answer, resp.Books, resp.Book, resp.Comparison, resp.Analytics = resultFromDomain(res)
	}

	return resp, env.Err
}

// IndexBooks embeds and indexes books in batches. Books without an ID
// are rejected and counted in the summary, never silently dropped.
func (c *Client) IndexBooks(ctx context.Context, books []Book) (IndexSummary, error) {
	start := time.Now()

	entries := make([]ingestuc.Entry, len(books))
	for i, b := range books {
		entries[i] = ingestuc.Entry{ID: b.ID, Book: bookToDomain(b)}
	}

	summary := c.ingestSvc.Index(ctx, entries)

	var err error
	if summary.Indexed == 0 && summary.Failed > 0 {
		err = fmt.Errorf("shelfwise: indexing failed: %s", summary.Errors[0])
	}
	c.obs.observe("index_books", start, err)

	return IndexSummary{
		Indexed: summary.Indexed,
		Failed:  summary.Failed,
		Errors:  summary.Errors,
	}, err
}

// GetBook returns a stored book by ID.
func (c *Client) GetBook(ctx context.Context, id string) (b Book, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_book", start, err) }()

	domBook, err := c.books.Get(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("get book: %w", err)
	}
	return bookFromDomain(id, domBook), nil
}

// DeleteBook removes a stored book by ID.
func (c *Client) DeleteBook(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("delete_book", start, err) }()

	if err = c.books.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component -> "ok"/"error"
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// embedderAdapter wraps the public Embedder to satisfy internal domain.Embedder.
type embedderAdapter struct {
	inner Embedder
}

func (a *embedderAdapter) Embed(ctx context.Context, text string) (domain.EmbeddingResult, error) {
	r, err := a.inner.Embed(ctx, text)
	if err != nil {
		return domain.EmbeddingResult{}, fmt.Errorf("embed: %w", err)
	}
	return domain.EmbeddingResult{
		Embedding:    r.Embedding,
		PromptTokens: r.PromptTokens,
		TotalTokens:  r.TotalTokens,
	}, nil
}

// batchAdapter exposes a domain.BatchEmbedder: native batching when the
// wrapped embedder supports it, one call per text otherwise.
type batchAdapter struct {
	inner domain.Embedder
}

func (a *batchAdapter) BatchEmbed(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error) {
	if ea, ok := a.inner.(*embedderAdapter); ok {
		if be, ok := ea.inner.(BatchEmbedder); ok {
			r, err := be.BatchEmbed(ctx, texts)
			if err != nil {
				return domain.BatchEmbeddingResult{}, fmt.Errorf("batch embed: %w", err)
			}
			return domain.BatchEmbeddingResult{
				Embeddings:   r.Embeddings,
				PromptTokens: r.PromptTokens,
				TotalTokens:  r.TotalTokens,
			}, nil
		}
	}
	return domain.BatchFallback(ctx, a.inner, texts)
}

// noopEmbedder returns an error on Embed call (used when no embedder configured).
type noopEmbedder struct{}

func (noopEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	return domain.EmbeddingResult{}, errors.New(
		"shelfwise: embedder not configured (use WithEmbedder)",
	)
}
