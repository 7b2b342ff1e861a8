package extract

import (
	"reflect"
	"testing"

	"github.com/shelfwise/shelfwise/internal/domain/query/entities"
)

func TestExtract_Genres(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"single canonical", "find science fiction books", []string{"science fiction"}},
		{"synonym", "anything with dragons and magic", []string{"fantasy"}},
		{"sci-fi shorthand", "cheap sci-fi", []string{"science fiction"}},
		{"multiple genres", "mystery or horror tonight", []string{"mystery", "horror"}},
		{"duplicate synonyms collapse", "scary horror ghost stories", []string{"horror"}},
		{"none", "what should I buy", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.query).Genres
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Genres = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtract_PriceRange(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name     string
		query    string
		wantMin  *float64
		wantMax  *float64
		wantNone bool
	}{
		{"under", "books under $20", nil, f(20), false},
		{"below with cents", "below $15.50", nil, f(15.50), false},
		{"less than no dollar sign", "less than 30", nil, f(30), false},
		{"over", "over $12", f(12), nil, false},
		{"between overrides", "under $5 but really between $10 and $25", f(10), f(25), false},
		{"no signal", "good fantasy books", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.query).PriceRange
			if tt.wantNone {
				if got != nil {
					t.Fatalf("PriceRange = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("PriceRange = nil, want a range")
			}
			assertBound(t, "min", got.Min, tt.wantMin)
			assertBound(t, "max", got.Max, tt.wantMax)
		})
	}
}

func TestExtract_RatingRange(t *testing.T) {
	e := New(nil)

	tests := []struct {
		name    string
		query   string
		wantMin *float64
		wantMax *float64
	}{
		{"rated above", "books rated above 4", f(4), nil},
		{"rated over decimal", "rated over 3.5", f(3.5), nil},
		{"rated below", "rated below 2", nil, f(2)},
		{"highly rated business rule", "highly rated romance", f(4.0), nil},
		{"high rating overrides explicit min", "rated above 2 with a high rating", f(4.0), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.query).RatingRange
			if got == nil {
				t.Fatal("RatingRange = nil, want a range")
			}
			assertBound(t, "min", got.Min, tt.wantMin)
			assertBound(t, "max", got.Max, tt.wantMax)
		})
	}

	if got := e.Extract("plain query").RatingRange; got != nil {
		t.Errorf("RatingRange = %+v, want nil", got)
	}
}

func TestExtract_Stores(t *testing.T) {
	tests := []struct {
		name   string
		stores []string
		query  string
		want   []string
	}{
		{"single mention", nil, "only from store a", []string{"store_a"}},
		{"bookstore mention", nil, "is bookstore b cheaper", []string{"store_b"}},
		{"duplicates collapse", nil, "store a and store a again", []string{"store_a"}},
		{"both stores default catalog", nil, "both stores", []string{"store_a", "store_b"}},
		{"all stores configured catalog", []string{"store_a", "store_b", "store_c"},
			"across all stores", []string{"store_a", "store_b", "store_c"}},
		{"no mention", nil, "fantasy books", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.stores)
			got := e.Extract(tt.query).Stores
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Stores = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtract_Format(t *testing.T) {
	e := New(nil)

	tests := []struct {
		query string
		want  string
	}{
		{"kindle edition please", "Ebook"},
		{"on audible", "Audiobook"},
		{"hardback only", "Hardcover"},
		{"softcover copy", "Paperback"},
		{"no format here", ""},
	}

	for _, tt := range tests {
		if got := e.Extract(tt.query).Format; got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestExtract_Availability(t *testing.T) {
	e := New(nil)

	tests := []struct {
		query string
		want  *bool
	}{
		{"books in stock", b(true)},
		{"available now", b(true)},
		{"out of stock titles", b(false)},
		{"even if unavailable", b(false)},
		{"no opinion", nil},
	}

	for _, tt := range tests {
		got := e.Extract(tt.query).Availability
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("Availability(%q) = %v, want nil", tt.query, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("Availability(%q) = %v, want %v", tt.query, got, *tt.want)
		}
	}
}

func TestExtract_SortKey(t *testing.T) {
	e := New(nil)

	tests := []struct {
		query string
		want  entities.SortKey
	}{
		{"cheapest fantasy", entities.PriceAsc},
		{"most expensive books", entities.PriceDesc},
		{"best rated mystery", entities.RatingDesc},
		{"newest releases", entities.YearDesc},
		{"oldest editions", entities.YearAsc},
		// First matching rule wins; at most one key is produced.
		{"cheapest and newest", entities.PriceAsc},
		{"no preference", ""},
	}

	for _, tt := range tests {
		if got := e.Extract(tt.query).SortBy; got != tt.want {
			t.Errorf("SortBy(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestExtract_Limit(t *testing.T) {
	e := New(nil)

	tests := []struct {
		query string
		want  int
	}{
		{"top 5 cheapest fantasy books", 5},
		{"show 12 books", 12},
		{"first 3 results", 3},
		{"top 7 or 9 books, top wins", 7},
		{"no limit", 0},
	}

	for _, tt := range tests {
		if got := e.Extract(tt.query).Limit; got != tt.want {
			t.Errorf("Limit(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := New(nil)
	q := "top 5 highly rated sci-fi or fantasy ebooks under $25 from store a"

	first := e.Extract(q)
	second := e.Extract(q)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract is not deterministic:\n%+v\n%+v", first, second)
	}
}

// --- helpers ---

func f(v float64) *float64 { return &v }
func b(v bool) *bool       { return &v }

func assertBound(t *testing.T, side string, got, want *float64) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %v, want nil", side, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %v", side, *want)
	case want != nil && *got != *want:
		t.Errorf("%s = %v, want %v", side, *got, *want)
	}
}
