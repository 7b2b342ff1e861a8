package retrieve

import (
	"sort"

	"github.com/shelfwise/shelfwise/internal/domain/book"
)

// StoreSummary aggregates one store's share of a comparison sample.
// AvgRating is nil when no book in the store has a rating.
type StoreSummary struct {
	StoreName string     `json:"store_name"`
	BookCount int        `json:"book_count"`
	AvgPrice  float64    `json:"avg_price"`
	MinPrice  float64    `json:"min_price"`
	MaxPrice  float64    `json:"max_price"`
	AvgRating *float64   `json:"avg_rating"`
	Samples   []book.Hit `json:"sample_books"`
}

// Comparison is the per-store breakdown of a comparison query, keyed
// by store identifier. Picking a "best value" store is left to the
// presentation layer.
type Comparison struct {
	Stores         map[string]StoreSummary `json:"stores"`
	TotalBooks     int                     `json:"total_books"`
	StoresCompared int                     `json:"stores_compared"`
}

// PriceStats describes the price spread of an analytics sample.
// Median is the lower middle of the sorted prices on even counts.
type PriceStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  float64 `json:"median"`
}

// RatingStats covers only books that carry a rating; all fields are
// nil and Count is 0 when none do.
type RatingStats struct {
	Average *float64 `json:"average"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Count   int      `json:"count"`
}

// DistributionEntry is one bucket of a categorical breakdown.
type DistributionEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Analytics is the aggregate view over an analytics sample.
type Analytics struct {
	TotalBooks int                 `json:"total_books"`
	Price      PriceStats          `json:"price_stats"`
	Rating     RatingStats         `json:"rating_stats"`
	Genres     []DistributionEntry `json:"genre_distribution"`
	Stores     []DistributionEntry `json:"store_distribution"`
	Formats    []DistributionEntry `json:"format_distribution"`
}

func compareStores(hits []book.Hit) Comparison {
	grouped := make(map[string][]book.Hit)
	for _, h := range hits {
		grouped[h.Book.StoreID] = append(grouped[h.Book.StoreID], h)
	}

	stores := make(map[string]StoreSummary, len(grouped))
	for storeID, books := range grouped {
		summary := StoreSummary{
			StoreName: books[0].Book.StoreName,
			BookCount: len(books),
			MinPrice:  books[0].Book.Price,
			MaxPrice:  books[0].Book.Price,
		}

		var priceSum, ratingSum float64
		var rated int
		for _, b := range books {
			priceSum += b.Book.Price
			if b.Book.Price < summary.MinPrice {
				summary.MinPrice = b.Book.Price
			}
			if b.Book.Price > summary.MaxPrice {
				summary.MaxPrice = b.Book.Price
			}
			if b.Book.Rating != nil {
				ratingSum += *b.Book.Rating
				rated++
			}
		}
		summary.AvgPrice = priceSum / float64(len(books))
		if rated > 0 {
			avg := ratingSum / float64(rated)
			summary.AvgRating = &avg
		}

		n := len(books)
		if n > comparisonSamples {
			n = comparisonSamples
		}
		summary.Samples = books[:n]

		stores[storeID] = summary
	}

	return Comparison{
		Stores:         stores,
		TotalBooks:     len(hits),
		StoresCompared: len(stores),
	}
}

func summarize(hits []book.Hit) Analytics {
	return Analytics{
		TotalBooks: len(hits),
		Price:      priceStats(hits),
		Rating:     ratingStats(hits),
		Genres:     distribution(hits, func(b book.Book) string { return b.Genre }),
		Stores:     distribution(hits, func(b book.Book) string { return b.StoreName }),
		Formats:    distribution(hits, func(b book.Book) string { return b.Format() }),
	}
}

func priceStats(hits []book.Hit) PriceStats {
	prices := make([]float64, len(hits))
	var sum float64
	for i, h := range hits {
		prices[i] = h.Book.Price
		sum += h.Book.Price
	}
	sort.Float64s(prices)

	return PriceStats{
		Average: sum / float64(len(prices)),
		Min:     prices[0],
		Max:     prices[len(prices)-1],
		Median:  prices[len(prices)/2],
	}
}

func ratingStats(hits []book.Hit) RatingStats {
	var ratings []float64
	for _, h := range hits {
		if h.Book.Rating != nil {
			ratings = append(ratings, *h.Book.Rating)
		}
	}
	if len(ratings) == 0 {
		return RatingStats{}
	}

	sort.Float64s(ratings)
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	avg := sum / float64(len(ratings))

	return RatingStats{
		Average: &avg,
		Min:     &ratings[0],
		Max:     &ratings[len(ratings)-1],
		Count:   len(ratings),
	}
}

// distribution counts hits per key, ordered by descending count with
// key order breaking ties so the output is deterministic.
func distribution(hits []book.Hit, key func(book.Book) string) []DistributionEntry {
	counts := make(map[string]int)
	for _, h := range hits {
		counts[key(h.Book)]++
	}

	entries := make([]DistributionEntry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, DistributionEntry{Key: k, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}
