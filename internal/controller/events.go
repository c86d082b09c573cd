package controller

import (
	"github.com/calebwray/shopfront/internal/catalog"
	"github.com/calebwray/shopfront/internal/pipeline"
)

// Event is a state change routed through Controller.Dispatch.
type Event interface{ isEvent() }

// ProductsLoaded replaces the raw collection, typically after a fetch.
// Dispatching it with a nil slice empties the dashboard.
type ProductsLoaded struct {
	Products []catalog.Product
}

// SearchChanged updates the search term. The term is trimmed on the way in.
type SearchChanged struct {
	Term string
}

// SortToggled toggles sorting on a field: toggling the active field flips
// its direction, a new field starts ascending.
type SortToggled struct {
	Field pipeline.SortField
}

// PageSelected moves to a page of the already-sorted collection.
// Out-of-range pages are ignored.
type PageSelected struct {
	Page int
}

// PageSizeChanged switches the page size and restarts from page 1.
// Sizes outside pipeline.PageSizes are ignored.
type PageSizeChanged struct {
	Size int
}

func (ProductsLoaded) isEvent()  {}
func (SearchChanged) isEvent()   {}
func (SortToggled) isEvent()     {}
func (PageSelected) isEvent()    {}
func (PageSizeChanged) isEvent() {}
