package shelfwise

import (
	"github.com/shelfwise/shelfwise/internal/domain/book"
	"github.com/shelfwise/shelfwise/internal/usecase/answer"
	"github.com/shelfwise/shelfwise/internal/usecase/retrieve"
)

// Book is a catalog item. Rating and PublicationYear are pointers:
// nil means "not known", never a zero value.
type Book struct {
	ID              string
	Title           string
	Author          string
	Genre           string
	Price           float64
	Rating          *float64
	StoreID         string
	StoreName       string
	Publisher       string
	PublicationYear *int
	FormatType      string
	Availability    bool
	Description     string
}

// Hit is a retrieved book with its similarity score in [0,1].
type Hit struct {
	ID       string
	Score    float64
	Book     Book
	Document string
}

// QueryResponse is the outcome of a natural-language query.
type QueryResponse struct {
	Success    bool
	Intent     string
	Confidence float64
	Keywords   []string
	Answer     string
	Books      []Hit
	Book       *Hit
	Comparison *Comparison
	Analytics  *Analytics
}

// StoreSummary aggregates one store's books in a comparison.
type StoreSummary struct {
	StoreName string
	BookCount int
	AvgPrice  float64
	MinPrice  float64
	MaxPrice  float64
	AvgRating *float64
	Samples   []Hit
}

// Comparison is a per-store aggregation of matching books.
type Comparison struct {
	Stores         map[string]StoreSummary
	TotalBooks     int
	StoresCompared int
}

// PriceStats summarizes the price distribution.
type PriceStats struct {
	Average float64
	Min     float64
	Max     float64
	Median  float64
}

// RatingStats summarizes ratings over books that have one.
type RatingStats struct {
	Average *float64
	Min     *float64
	Max     *float64
	Count   int
}

// DistributionEntry is one bucket of a categorical distribution,
// ordered by descending count.
type DistributionEntry struct {
	Key   string
	Count int
}

// Analytics is the aggregate view over matching books.
type Analytics struct {
	TotalBooks int
	Price      PriceStats
	Rating     RatingStats
	Genres     []DistributionEntry
	Stores     []DistributionEntry
	Formats    []DistributionEntry
}

// IndexSummary reports the outcome of a bulk indexing call.
type IndexSummary struct {
	Indexed int
	Failed  int
	Errors  []string
}

// --- converters between public SDK types and internal domain types ---

func bookToDomain(b Book) book.Book {
	return book.Book{
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre,
		Price:           b.Price,
		Rating:          b.Rating,
		StoreID:         b.StoreID,
		StoreName:       b.StoreName,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		FormatType:      b.FormatType,
		Availability:    b.Availability,
		Description:     b.Description,
	}
}

func bookFromDomain(id string, b book.Book) Book {
	return Book{
		ID:              id,
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre,
		Price:           b.Price,
		Rating:          b.Rating,
		StoreID:         b.StoreID,
		StoreName:       b.StoreName,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		FormatType:      b.FormatType,
		Availability:    b.Availability,
		Description:     b.Description,
	}
}

func hitFromDomain(h book.Hit) Hit {
	return Hit{
		ID:       h.ID,
		Score:    h.Score,
		Book:     bookFromDomain(h.ID, h.Book),
		Document: h.Document,
	}
}

func hitsFromDomain(hits []book.Hit) []Hit {
	if len(hits) == 0 {
		return nil
	}
	out := make([]Hit, len(hits))
	for i, h := range hits {
		out[i] = hitFromDomain(h)
	}
	return out
}

func comparisonFromDomain(c *retrieve.Comparison) *Comparison {
	if c == nil {
		return nil
	}
	stores := make(map[string]StoreSummary, len(c.Stores))
	for id, s := range c.Stores {
		stores[id] = StoreSummary{
			StoreName: s.StoreName,
			BookCount: s.BookCount,
			AvgPrice:  s.AvgPrice,
			MinPrice:  s.MinPrice,
			MaxPrice:  s.MaxPrice,
			AvgRating: s.AvgRating,
			Samples:   hitsFromDomain(s.Samples),
		}
	}
	return &Comparison{
		Stores:         stores,
		TotalBooks:     c.TotalBooks,
		StoresCompared: c.StoresCompared,
	}
}

func analyticsFromDomain(a *retrieve.Analytics) *Analytics {
	if a == nil {
		return nil
	}
	return &Analytics{
		TotalBooks: a.TotalBooks,
		Price: PriceStats{
			Average: a.Price.Average,
			Min:     a.Price.Min,
			Max:     a.Price.Max,
			Median:  a.Price.Median,
		},
		Rating: RatingStats{
			Average: a.Rating.Average,
			Min:     a.Rating.Min,
			Max:     a.Rating.Max,
			Count:   a.Rating.Count,
		},
		Genres:  distributionFromDomain(a.Genres),
		Stores:  distributionFromDomain(a.Stores),
		Formats: distributionFromDomain(a.Formats),
	}
}

func distributionFromDomain(entries []retrieve.DistributionEntry) []DistributionEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]DistributionEntry, len(entries))
	for i, e := range entries {
		out[i] = DistributionEntry{Key: e.Key, Count: e.Count}
	}
	return out
}

func resultFromDomain(res *answer.Result) (answerText string, books []Hit, single *Hit, cmp *Comparison, an *Analytics) {
	if res == nil {
		return "", nil, nil, nil, nil
	}
	books = hitsFromDomain(res.Books)
	if res.Book != nil {
		h := hitFromDomain(*res.Book)
		single = &h
	}
	return res.Answer, books, single, comparisonFromDomain(res.Comparison), analyticsFromDomain(res.Analytics)
}
