package retrieve

import (
	"sort"

	"github.com/shelfwise/shelfwise/internal/domain/book"
	"github.com/shelfwise/shelfwise/internal/domain/query/entities"
)

// sortHits re-orders hits in place by the requested key, discarding
// similarity order. Stable so equal keys keep their similarity rank.
// Missing ratings sort as 0; missing years sort newest-last on
// ascending and oldest-last on descending.
func sortHits(hits []book.Hit, key entities.SortKey) {
	switch key {
	case entities.PriceAsc:
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].Book.Price < hits[j].Book.Price
		})
	case entities.PriceDesc:
		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].Book.Price > hits[j].Book.Price
		})
	case entities.RatingDesc:
		sort.SliceStable(hits, func(i, j int) bool {
			return ratingOrZero(hits[i]) > ratingOrZero(hits[j])
		})
	case entities.YearDesc:
		sort.SliceStable(hits, func(i, j int) bool {
			return yearOr(hits[i], 0) > yearOr(hits[j], 0)
		})
	case entities.YearAsc:
		sort.SliceStable(hits, func(i, j int) bool {
			return yearOr(hits[i], 9999) < yearOr(hits[j], 9999)
		})
	}
}

func ratingOrZero(h book.Hit) float64 {
	if h.Book.Rating == nil {
		return 0
	}
	return *h.Book.Rating
}

func yearOr(h book.Hit, missing int) int {
	if h.Book.PublicationYear == nil {
		return missing
	}
	return *h.Book.PublicationYear
}
