package pipeline

import (
	"testing"

	"github.com/calebwray/shopfront/internal/catalog"
)

func price(v float64) *float64 { return &v }

func titled(titles ...string) []catalog.Product {
	products := make([]catalog.Product, len(titles))
	for i, title := range titles {
		products[i] = catalog.Product{ID: i + 1, Title: title}
	}
	return products
}

func TestFilterByTitleEmptyTermIsIdentity(t *testing.T) {
	products := titled("Red Shirt", "Blue Mug", "Green Shirt")

	for _, term := range []string{"", "   ", "\t"} {
		result := FilterByTitle(products, term)
		if len(result) != len(products) {
			t.Fatalf("term %q: expected %d products, got %d", term, len(products), len(result))
		}
		for i := range products {
			if result[i].ID != products[i].ID {
				t.Errorf("term %q: order changed at index %d", term, i)
			}
		}
	}
}

func TestFilterByTitleCaseInsensitive(t *testing.T) {
	products := titled("Classic SHIRT", "Denim Jacket", "shirt dress", "T-Shirt Pack")

	result := FilterByTitle(products, "Shirt")

	if len(result) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(result))
	}
	// Stable filter: original relative order
	want := []int{1, 3, 4}
	for i, p := range result {
		if p.ID != want[i] {
			t.Errorf("position %d: expected ID %d, got %d", i, want[i], p.ID)
		}
	}
}

func TestFilterByTitleNoMatch(t *testing.T) {
	products := titled("Mug", "Plate")

	result := FilterByTitle(products, "shirt")
	if len(result) != 0 {
		t.Errorf("expected 0 matches, got %d", len(result))
	}
}

func TestFilterByTitleExcludesUntitled(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Title: "Shirt"},
		{ID: 2}, // no title
		{ID: 3, Title: "Another Shirt"},
	}

	result := FilterByTitle(products, "shirt")
	if len(result) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(result))
	}
	for _, p := range result {
		if p.Title == "" {
			t.Error("untitled product matched a non-empty term")
		}
	}
}

func TestFilterByTitleNilInput(t *testing.T) {
	if got := FilterByTitle(nil, "shirt"); len(got) != 0 {
		t.Errorf("expected empty result, got %d items", len(got))
	}
}

func TestSearchStateWithTermTrims(t *testing.T) {
	s := SearchState{}.WithTerm("  shirt  ")
	if s.Term != "shirt" {
		t.Errorf("expected trimmed term 'shirt', got %q", s.Term)
	}
}
