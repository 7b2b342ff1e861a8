package catalog

import "github.com/shelfwise/shelfwise/internal/db"

// indexDefinition builds the books index schema. TAG fields carry the
// whitelisted categorical filters, NUMERIC fields the range filters,
// and the document text plus HNSW vector drive retrieval.
func indexDefinition(cfg Config) *db.IndexDefinition {
	return db.NewIndex(cfg.IndexName).
		Prefix(cfg.KeyPrefix).
		Tag(fieldGenre).
		Tag(fieldStoreID).
		Tag(fieldFormat).
		Tag(fieldAvailability).
		Numeric(fieldPrice).
		Numeric(fieldRating).
		Numeric(fieldYear).
		Text(fieldDocument).
		VectorHNSW(fieldVector, cfg.Dimensions, db.DistanceCosine, cfg.HNSWM, cfg.HNSWEFConstruct).
		MustBuild()
}
