// Package pipeline implements the client-side data pipeline: search
// filtering, sorting, and pagination over an in-memory product collection.
// All functions are pure: []Product in, []Product out. Inputs are never
// mutated and state updates return new values.
package pipeline

import (
	"strings"

	"github.com/calebwray/shopfront/internal/catalog"
)

// SearchState holds the current search term.
type SearchState struct {
	Term string
}

// WithTerm returns the state with the term trimmed of surrounding whitespace.
func (s SearchState) WithTerm(term string) SearchState {
	s.Term = strings.TrimSpace(term)
	return s
}

// FilterByTitle keeps products whose title contains term, case-insensitively.
//
// An empty (or all-whitespace) term is the identity filter: the input slice
// comes back untouched, same order and elements. Untitled products never
// match a non-empty term. Relative order is always preserved.
func FilterByTitle(products []catalog.Product, term string) []catalog.Product {
	term = strings.TrimSpace(term)
	if term == "" {
		return products
	}

	needle := strings.ToLower(term)
	result := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if p.Title == "" {
			continue
		}
		if strings.Contains(strings.ToLower(p.Title), needle) {
			result = append(result, p)
		}
	}

	return result
}
