package shelfwise

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string

	embedder Embedder

	dimensions      int
	indexName       string
	keyPrefix       string
	stores          []string
	hnswM           int
	hnswEFConstruct int
	batchSize       int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithEmbedder sets the text embedding provider. Required.
func WithEmbedder(e Embedder) Option {
	return optionFunc(func(c *clientConfig) {
		c.embedder = e
	})
}

// WithDimensions sets the embedding vector dimension.
// Defaults to 1536 (text-embedding-3-small).
func WithDimensions(dim int) Option {
	return optionFunc(func(c *clientConfig) {
		c.dimensions = dim
	})
}

// WithIndex overrides the RediSearch index name and hash key prefix.
func WithIndex(name, keyPrefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.indexName = name
		c.keyPrefix = keyPrefix
	})
}

// WithStores sets the store IDs the query parser recognizes.
// Defaults to store_a and store_b.
func WithStores(ids []string) Option {
	return optionFunc(func(c *clientConfig) {
		c.stores = ids
	})
}

// WithHNSW configures HNSW index parameters (M and EF construction).
// Defaults: M=32, EFConstruct=400.
func WithHNSW(m, efConstruct int) Option {
	return optionFunc(func(c *clientConfig) {
		c.hnswM = m
		c.hnswEFConstruct = efConstruct
	})
}

// WithBatchSize sets the number of books embedded per API call during
// bulk indexing. Default: 50.
func WithBatchSize(size int) Option {
	return optionFunc(func(c *clientConfig) {
		c.batchSize = size
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
