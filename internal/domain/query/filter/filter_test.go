package filter

import (
	"strings"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }

// --- Range tests ---

func TestNewRangeBounds_Valid(t *testing.T) {
	tests := []struct {
		name     string
		gte, lte *float64
	}{
		{"gte only", floatPtr(0), nil},
		{"lte only", nil, floatPtr(100)},
		{"both", floatPtr(10), floatPtr(20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRangeBounds(tt.gte, tt.lte)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (r.GTE() == nil) != (tt.gte == nil) {
				t.Error("GTE() mismatch")
			}
			if (r.LTE() == nil) != (tt.lte == nil) {
				t.Error("LTE() mismatch")
			}
		})
	}
}

func TestNewRangeBounds_NoBoundary(t *testing.T) {
	_, err := NewRangeBounds(nil, nil)
	if err == nil {
		t.Fatal("expected error for no boundary")
	}
	if !strings.Contains(err.Error(), "at least one") {
		t.Errorf("error = %q", err)
	}
}

// --- Condition tests ---

func TestNewMatch_Valid(t *testing.T) {
	c, err := NewMatch(AttrGenre, "fantasy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Key() != AttrGenre {
		t.Errorf("Key() = %q", c.Key())
	}
	if c.Match() != "fantasy" {
		t.Errorf("Match() = %q", c.Match())
	}
	if !c.IsMatch() {
		t.Error("IsMatch() = false")
	}
	if c.IsRange() {
		t.Error("IsRange() = true for match condition")
	}
	if c.Range() != nil {
		t.Error("Range() should be nil for match")
	}
}

func TestNewMatch_UnknownAttr(t *testing.T) {
	_, err := NewMatch("author_age", "42")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "not filterable") {
		t.Errorf("error = %q", err)
	}
}

func TestNewMatch_EmptyValue(t *testing.T) {
	_, err := NewMatch(AttrGenre, "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "match value") {
		t.Errorf("error = %q", err)
	}
}

func TestNewIn_Valid(t *testing.T) {
	c, err := NewIn(AttrStoreID, []string{"store_a", "store_b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsIn() {
		t.Error("IsIn() = false")
	}
	if c.IsMatch() {
		t.Error("IsMatch() = true for in condition")
	}
	if got := c.In(); len(got) != 2 || got[0] != "store_a" {
		t.Errorf("In() = %v", got)
	}
}

func TestNewIn_Empty(t *testing.T) {
	_, err := NewIn(AttrStoreID, nil)
	if err == nil {
		t.Fatal("expected error for empty value set")
	}
}

func TestNewIn_EmptyMember(t *testing.T) {
	_, err := NewIn(AttrStoreID, []string{"store_a", ""})
	if err == nil {
		t.Fatal("expected error for empty member")
	}
}

func TestNewRange_Valid(t *testing.T) {
	r, err := NewRangeBounds(floatPtr(5), floatPtr(25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := NewRange(AttrPrice, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsRange() {
		t.Error("IsRange() = false")
	}
	if c.Range() == nil || *c.Range().GTE() != 5 || *c.Range().LTE() != 25 {
		t.Errorf("Range() = %+v", c.Range())
	}
}

func TestNewRange_UnknownAttr(t *testing.T) {
	r, _ := NewRangeBounds(floatPtr(1), nil)
	_, err := NewRange("page_count", r)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestIsAllowedAttr(t *testing.T) {
	for _, attr := range []string{AttrPrice, AttrRating, AttrStoreID, AttrFormatType, AttrAvailability, AttrGenre} {
		if !IsAllowedAttr(attr) {
			t.Errorf("IsAllowedAttr(%q) = false", attr)
		}
	}
	if IsAllowedAttr("isbn") {
		t.Error("IsAllowedAttr(isbn) = true")
	}
}

// --- Expression tests ---

func TestExpression_Empty(t *testing.T) {
	var e Expression
	if !e.IsEmpty() {
		t.Error("zero expression should be empty")
	}
	if e.Has(AttrPrice) {
		t.Error("Has() = true on empty expression")
	}
	if len(e.Conditions()) != 0 {
		t.Error("Conditions() non-empty on empty expression")
	}
}

func TestExpression_HasAndWithout(t *testing.T) {
	e := NewBuilder().
		Match(AttrGenre, "fantasy").
		Match(AttrStoreID, "store_a").
		Range(AttrPrice, nil, floatPtr(20)).
		MustBuild()

	if !e.Has(AttrStoreID) {
		t.Error("Has(store_id) = false")
	}

	stripped := e.Without(AttrStoreID)
	if stripped.Has(AttrStoreID) {
		t.Error("Without(store_id) kept the store condition")
	}
	if len(stripped.Conditions()) != 2 {
		t.Errorf("stripped has %d conditions, want 2", len(stripped.Conditions()))
	}

	// The original is untouched.
	if !e.Has(AttrStoreID) {
		t.Error("Without mutated the source expression")
	}
}

func TestExpression_WithoutAbsentKey(t *testing.T) {
	e := NewBuilder().Match(AttrGenre, "fantasy").MustBuild()
	same := e.Without(AttrStoreID)
	if len(same.Conditions()) != 1 {
		t.Errorf("got %d conditions, want 1", len(same.Conditions()))
	}
}

// --- Builder tests ---

func TestBuilder_SkipsAbsentValues(t *testing.T) {
	e := NewBuilder().
		Match(AttrGenre, "").
		In(AttrStoreID, nil).
		Range(AttrPrice, nil, nil).
		MustBuild()
	if !e.IsEmpty() {
		t.Errorf("expected empty expression, got %d conditions", len(e.Conditions()))
	}
}

func TestBuilder_SingleInCollapsesToMatch(t *testing.T) {
	e := NewBuilder().In(AttrStoreID, []string{"store_a"}).MustBuild()
	conds := e.Conditions()
	if len(conds) != 1 {
		t.Fatalf("got %d conditions, want 1", len(conds))
	}
	if !conds[0].IsMatch() {
		t.Error("single-value In should collapse to a match condition")
	}
	if conds[0].Match() != "store_a" {
		t.Errorf("Match() = %q", conds[0].Match())
	}
}

func TestBuilder_PropagatesError(t *testing.T) {
	_, err := NewBuilder().
		Match("bogus_attr", "x").
		Match(AttrGenre, "fantasy").
		Build()
	if err == nil {
		t.Fatal("expected error from invalid attribute")
	}
}

func TestBuilder_MustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewBuilder().Match("bogus_attr", "x").MustBuild()
}

func TestBuilder_PreservesOrder(t *testing.T) {
	e := NewBuilder().
		Match(AttrGenre, "fantasy").
		Range(AttrPrice, floatPtr(5), floatPtr(25)).
		In(AttrStoreID, []string{"store_a", "store_b"}).
		MustBuild()

	conds := e.Conditions()
	if len(conds) != 3 {
		t.Fatalf("got %d conditions, want 3", len(conds))
	}
	want := []string{AttrGenre, AttrPrice, AttrStoreID}
	for i, key := range want {
		if conds[i].Key() != key {
			t.Errorf("conds[%d].Key() = %q, want %q", i, conds[i].Key(), key)
		}
	}
}
