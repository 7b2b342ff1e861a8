package answer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain/book"
	"github.com/shelfwise/shelfwise/internal/domain/query/filter"
	"github.com/shelfwise/shelfwise/internal/usecase/retrieve"
)

// maxListed caps how many books a rendered answer enumerates.
const maxListed = 5

func renderSearch(original string, hits []book.Hit) string {
	if len(hits) == 0 {
		return fmt.Sprintf("I couldn't find any books matching %q. Try adjusting your search criteria.", original)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d books for you:\n\n", len(hits))
	for i, h := range hits {
		if i == maxListed {
			break
		}
		fmt.Fprintf(&b, "%d. %s by %s\n", i+1, h.Book.Title, h.Book.Author)
		fmt.Fprintf(&b, "   - Genre: %s\n", h.Book.Genre)
		fmt.Fprintf(&b, "   - Price: $%.2f\n", h.Book.Price)
		fmt.Fprintf(&b, "   - Store: %s\n", h.Book.StoreName)
		if h.Book.Rating != nil {
			fmt.Fprintf(&b, "   - Rating: %.1f/5\n", *h.Book.Rating)
		}
		b.WriteByte('\n')
	}
	if len(hits) > maxListed {
		fmt.Fprintf(&b, "... and %d more results.\n", len(hits)-maxListed)
	}
	return b.String()
}

func renderRecommendations(hits []book.Hit) string {
	if len(hits) == 0 {
		return "I don't have enough information to make recommendations. Please try a different query."
	}

	var b strings.Builder
	b.WriteString("Based on your interests, I recommend these books:\n\n")
	for i, h := range hits {
		if i == maxListed {
			break
		}
		fmt.Fprintf(&b, "%d. %s by %s\n", i+1, h.Book.Title, h.Book.Author)
		fmt.Fprintf(&b, "   - %s, $%.2f", h.Book.Genre, h.Book.Price)
		if h.Book.Rating != nil {
			fmt.Fprintf(&b, ", %.1f/5", *h.Book.Rating)
		}
		fmt.Fprintf(&b, "\n   - Available at: %s\n\n", h.Book.StoreName)
	}
	return b.String()
}

func renderComparison(cmp retrieve.Comparison) string {
	if len(cmp.Stores) == 0 {
		return "I couldn't find enough data to compare stores."
	}

	// Stable store order for deterministic output.
	ids := make([]string, 0, len(cmp.Stores))
	for id := range cmp.Stores {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString("Store comparison:\n\n")

	bestName := ""
	bestPrice := 0.0
	for _, id := range ids {
		s := cmp.Stores[id]
		fmt.Fprintf(&b, "%s\n", s.StoreName)
		fmt.Fprintf(&b, "  - Books available: %d\n", s.BookCount)
		fmt.Fprintf(&b, "  - Average price: $%.2f\n", s.AvgPrice)
		fmt.Fprintf(&b, "  - Price range: $%.2f - $%.2f\n", s.MinPrice, s.MaxPrice)
		if s.AvgRating != nil {
			fmt.Fprintf(&b, "  - Average rating: %.1f/5\n", *s.AvgRating)
		}
		b.WriteByte('\n')

		if bestName == "" || s.AvgPrice < bestPrice {
			bestName = s.StoreName
			bestPrice = s.AvgPrice
		}
	}

	fmt.Fprintf(&b, "Best value: %s with an average price of $%.2f\n", bestName, bestPrice)
	return b.String()
}

func renderAnalytics(an retrieve.Analytics) string {
	var b strings.Builder
	b.WriteString("Analytics report:\n\n")

	fmt.Fprintf(&b, "Price statistics:\n")
	fmt.Fprintf(&b, "  - Average: $%.2f\n", an.Price.Average)
	fmt.Fprintf(&b, "  - Range: $%.2f - $%.2f\n", an.Price.Min, an.Price.Max)
	fmt.Fprintf(&b, "  - Median: $%.2f\n\n", an.Price.Median)

	if len(an.Genres) > 0 {
		b.WriteString("Most popular genres:\n")
		for i, e := range an.Genres {
			if i == maxListed {
				break
			}
			fmt.Fprintf(&b, "  %d. %s: %d books\n", i+1, e.Key, e.Count)
		}
		b.WriteByte('\n')
	}

	if len(an.Stores) > 0 {
		b.WriteString("Store distribution:\n")
		for _, e := range an.Stores {
			fmt.Fprintf(&b, "  - %s: %d books\n", e.Key, e.Count)
		}
		b.WriteByte('\n')
	}

	if an.Rating.Average != nil {
		b.WriteString("Rating statistics:\n")
		fmt.Fprintf(&b, "  - Average rating: %.2f/5\n", *an.Rating.Average)
		fmt.Fprintf(&b, "  - Range: %.1f - %.1f\n", *an.Rating.Min, *an.Rating.Max)
	}

	return b.String()
}

func renderFiltered(hits []book.Hit, filters filter.Expression) string {
	if len(hits) == 0 {
		return "No books match your filter criteria. Try adjusting your filters."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d books matching your criteria:\n\n", len(hits))

	if !filters.IsEmpty() {
		b.WriteString("Active filters:\n")
		for _, c := range filters.Conditions() {
			switch {
			case c.IsMatch():
				fmt.Fprintf(&b, "  - %s = %s\n", c.Key(), c.Match())
			case c.IsIn():
				fmt.Fprintf(&b, "  - %s in [%s]\n", c.Key(), strings.Join(c.In(), ", "))
			case c.IsRange():
				if gte := c.Range().GTE(); gte != nil {
					fmt.Fprintf(&b, "  - %s >= %g\n", c.Key(), *gte)
				}
				if lte := c.Range().LTE(); lte != nil {
					fmt.Fprintf(&b, "  - %s <= %g\n", c.Key(), *lte)
				}
			}
		}
		b.WriteByte('\n')
	}

	for i, h := range hits {
		if i == maxListed {
			break
		}
		fmt.Fprintf(&b, "%d. %s - $%.2f\n", i+1, h.Book.Title, h.Book.Price)
		fmt.Fprintf(&b, "   by %s, %s\n", h.Book.Author, h.Book.Genre)
		if h.Book.Rating != nil {
			fmt.Fprintf(&b, "   Rating: %.1f/5\n", *h.Book.Rating)
		}
		b.WriteByte('\n')
	}
	if len(hits) > maxListed {
		fmt.Fprintf(&b, "... and %d more.\n", len(hits)-maxListed)
	}
	return b.String()
}

func renderInformation(h *book.Hit) string {
	if h == nil {
		return "I couldn't find information about that book."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", h.Book.Title)
	fmt.Fprintf(&b, "Author: %s\n", h.Book.Author)
	fmt.Fprintf(&b, "Genre: %s\n", h.Book.Genre)
	fmt.Fprintf(&b, "Price: $%.2f\n", h.Book.Price)
	if h.Book.Publisher != "" {
		fmt.Fprintf(&b, "Publisher: %s\n", h.Book.Publisher)
	}
	if h.Book.PublicationYear != nil {
		fmt.Fprintf(&b, "Published: %d\n", *h.Book.PublicationYear)
	}
	if h.Book.Rating != nil {
		fmt.Fprintf(&b, "Rating: %.1f/5\n", *h.Book.Rating)
	}
	fmt.Fprintf(&b, "Available at: %s\n", h.Book.StoreName)
	if h.Book.Availability {
		b.WriteString("Status: In Stock\n")
	} else {
		b.WriteString("Status: Out of Stock\n")
	}
	return b.String()
}
