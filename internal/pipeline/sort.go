package pipeline

import (
	"sort"

	"github.com/calebwray/shopfront/internal/catalog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField selects which product field orders the collection.
type SortField int

const (
	SortNone SortField = iota
	SortPrice
	SortTitle
)

// SortDirection is ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// SortState holds the active sort field and direction.
type SortState struct {
	Field     SortField
	Direction SortDirection
}

// Toggle flips the direction when field is already active, otherwise
// switches to the new field ascending.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return s
	}
	return SortState{Field: field, Direction: Ascending}
}

// collator gives locale-aware title ordering instead of raw byte order.
// The single-threaded event loop is the only caller, so sharing one is fine.
var collator = collate.New(language.English, collate.Loose)

// SortByPrice returns a new slice ordered by price. Products without a
// price compare as 0 rather than being dropped. The sort is stable and
// Descending uses the exact reverse comparator, so equal-price items keep
// their original relative order in both directions.
func SortByPrice(products []catalog.Product, dir SortDirection) []catalog.Product {
	result := clone(products)
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].PriceValue(), result[j].PriceValue()
		if dir == Descending {
			return a > b
		}
		return a < b
	})
	return result
}

// SortByTitle returns a new slice ordered by title, locale-aware. A missing
// title compares as the empty string. Stable, same tie behavior as SortByPrice.
func SortByTitle(products []catalog.Product, dir SortDirection) []catalog.Product {
	result := clone(products)
	sort.SliceStable(result, func(i, j int) bool {
		c := collator.CompareString(result[i].Title, result[j].Title)
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return result
}

// ApplySort dispatches on the sort state. SortNone returns the input as is.
func ApplySort(products []catalog.Product, state SortState) []catalog.Product {
	switch state.Field {
	case SortPrice:
		return SortByPrice(products, state.Direction)
	case SortTitle:
		return SortByTitle(products, state.Direction)
	default:
		return products
	}
}

func clone(products []catalog.Product) []catalog.Product {
	result := make([]catalog.Product, len(products))
	copy(result, products)
	return result
}
