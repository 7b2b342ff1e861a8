package query

import (
	"testing"

	"github.com/shelfwise/shelfwise/internal/domain/query/entities"
	"github.com/shelfwise/shelfwise/internal/domain/query/filter"
	"github.com/shelfwise/shelfwise/internal/domain/query/intent"
)

func TestNewParsed_Accessors(t *testing.T) {
	ents := entities.Entities{Genres: []string{"fantasy"}, Limit: 5}
	filters := filter.NewBuilder().Match(filter.AttrGenre, "fantasy").MustBuild()
	stats := Stats{QueryLength: 18, WordCount: 3, GenreCount: 1}

	p := NewParsed("find fantasy books", intent.Search, 0.8, ents, []string{"fantasy", "books"}, filters, stats)

	if p.Original() != "find fantasy books" {
		t.Errorf("Original() = %q", p.Original())
	}
	if p.Intent() != intent.Search {
		t.Errorf("Intent() = %q", p.Intent())
	}
	if p.Confidence() != 0.8 {
		t.Errorf("Confidence() = %v", p.Confidence())
	}
	if got := p.Entities(); len(got.Genres) != 1 || got.Limit != 5 {
		t.Errorf("Entities() = %+v", got)
	}
	if got := p.Keywords(); len(got) != 2 || got[0] != "fantasy" {
		t.Errorf("Keywords() = %v", got)
	}
	if p.Filters().IsEmpty() {
		t.Error("Filters() is empty")
	}
	if p.Stats().WordCount != 3 {
		t.Errorf("Stats().WordCount = %d", p.Stats().WordCount)
	}
}

func TestParsed_ZeroValue(t *testing.T) {
	var p Parsed
	if p.Intent() != intent.Intent("") {
		t.Errorf("zero Intent() = %q", p.Intent())
	}
	if !p.Filters().IsEmpty() {
		t.Error("zero Filters() is non-empty")
	}
	if len(p.Keywords()) != 0 {
		t.Error("zero Keywords() is non-empty")
	}
}
