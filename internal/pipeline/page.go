package pipeline

import "github.com/calebwray/shopfront/internal/catalog"

// PageSizes are the selectable page sizes.
var PageSizes = []int{5, 10, 20}

// DefaultPageSize is used until the user picks another size.
const DefaultPageSize = 10

// PageState tracks pagination over the filtered collection.
//
// Invariant after Slice: 1 <= Current <= max(TotalPages, 1). Out-of-range
// values are clamped, never rejected - a shrinking collection silently pulls
// the current page back into range.
type PageState struct {
	Current    int
	Size       int
	TotalItems int
	TotalPages int
}

// NewPageState returns the startup state: page 1 at the default size.
func NewPageState() PageState {
	return PageState{Current: 1, Size: DefaultPageSize}
}

// Slice recomputes TotalItems and TotalPages from the collection, clamps
// Current into range, and returns the visible window plus the updated state.
// An empty collection yields TotalPages 0 and an empty window.
func (s PageState) Slice(products []catalog.Product) ([]catalog.Product, PageState) {
	if s.Size <= 0 {
		s.Size = DefaultPageSize
	}
	s.TotalItems = len(products)
	s.TotalPages = (s.TotalItems + s.Size - 1) / s.Size

	if s.Current < 1 {
		s.Current = 1
	}
	if limit := max(s.TotalPages, 1); s.Current > limit {
		s.Current = limit
	}

	start := (s.Current - 1) * s.Size
	if start >= len(products) {
		return []catalog.Product{}, s
	}
	end := start + s.Size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], s
}

// WithPage moves to page n. Requests outside [1, TotalPages] are no-ops;
// the second return reports whether the page actually changed.
func (s PageState) WithPage(n int) (PageState, bool) {
	if n < 1 || n > s.TotalPages {
		return s, false
	}
	s.Current = n
	return s, true
}

// WithSize switches the page size. Sizes outside PageSizes are no-ops.
// A valid switch always lands back on page 1: the slice boundaries shift,
// so callers must re-run the whole chain, not just re-slice.
func (s PageState) WithSize(size int) (PageState, bool) {
	valid := false
	for _, allowed := range PageSizes {
		if size == allowed {
			valid = true
			break
		}
	}
	if !valid {
		return s, false
	}

	s.Size = size
	s.Current = 1
	return s, true
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
