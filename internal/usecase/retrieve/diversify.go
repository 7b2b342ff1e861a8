package retrieve

import "github.com/shelfwise/shelfwise/internal/domain/book"

// diversify picks up to limit hits in ranked order, admitting a hit
// when its author or its genre has not been kept yet. Both axes are
// marked once a hit is admitted, so an item can open either door for
// itself but closes both behind it. Remaining slots are backfilled
// with the skipped hits in original rank order.
func diversify(hits []book.Hit, limit int) []book.Hit {
	if limit <= 0 {
		return nil
	}

	picked := make([]book.Hit, 0, limit)
	used := make([]bool, len(hits))
	seenAuthors := make(map[string]struct{})
	seenGenres := make(map[string]struct{})

	for i, h := range hits {
		_, authorSeen := seenAuthors[h.Book.Author]
		_, genreSeen := seenGenres[h.Book.Genre]
		if authorSeen && genreSeen {
			continue
		}
		picked = append(picked, h)
		used[i] = true
		seenAuthors[h.Book.Author] = struct{}{}
		seenGenres[h.Book.Genre] = struct{}{}
		if len(picked) == limit {
			return picked
		}
	}

	for i, h := range hits {
		if used[i] {
			continue
		}
		picked = append(picked, h)
		if len(picked) == limit {
			break
		}
	}
	return picked
}
