// Package controller owns the authoritative product collection and the
// search/sort/page state, keeping the derived visible page consistent with
// all of them.
//
// Every state change arrives as a typed Event through Dispatch, which makes
// the central routing rule explicit and testable:
//
//   - ProductsLoaded, SearchChanged, SortToggled, PageSizeChanged re-run the
//     full filter, sort, paginate chain from the raw products.
//   - PageSelected only re-slices the cached sorted collection. Neither the
//     filter nor the sort inputs changed, so their output cannot have either.
//
// The controller is not safe for concurrent use. The Bubble Tea update loop
// is its only caller, so all dispatches happen on one logical thread.
package controller

import (
	"github.com/calebwray/shopfront/internal/catalog"
	"github.com/calebwray/shopfront/internal/pipeline"
)

// View is what the rendering layer consumes: the visible page and the page
// state that produced it. It is derived on every dispatch, never cached
// across dispatches, so it cannot drift from the state that defines it.
type View struct {
	Items []catalog.Product
	Page  pipeline.PageState
}

// Controller coordinates the data pipeline.
type Controller struct {
	raw    []catalog.Product
	sorted []catalog.Product // filtered+sorted cache, rebuilt on every full recompute
	search pipeline.SearchState
	sort   pipeline.SortState
	page   pipeline.PageState
}

// New returns a controller with default state: no products, no search term,
// no sort, page 1 at the default size.
func New() *Controller {
	return &Controller{page: pipeline.NewPageState()}
}

// Dispatch applies one event and returns the recomputed view.
func (c *Controller) Dispatch(ev Event) View {
	switch ev := ev.(type) {
	case ProductsLoaded:
		c.raw = ev.Products
		return c.applyFilters()

	case SearchChanged:
		c.search = c.search.WithTerm(ev.Term)
		return c.applyFilters()

	case SortToggled:
		c.sort = c.sort.Toggle(ev.Field)
		return c.applyFilters()

	case PageSizeChanged:
		next, ok := c.page.WithSize(ev.Size)
		if !ok {
			return c.updateDisplay()
		}
		c.page = next
		return c.applyFilters()

	case PageSelected:
		if next, ok := c.page.WithPage(ev.Page); ok {
			c.page = next
		}
		return c.updateDisplay()

	default:
		return c.updateDisplay()
	}
}

// View recomputes the current visible page without changing any state.
func (c *Controller) View() View {
	return c.updateDisplay()
}

// Search returns the current search state.
func (c *Controller) Search() pipeline.SearchState { return c.search }

// Sort returns the current sort state.
func (c *Controller) Sort() pipeline.SortState { return c.sort }

// TotalProducts is the size of the raw collection, before filtering.
func (c *Controller) TotalProducts() int { return len(c.raw) }

// applyFilters re-runs filter then sort from the raw products, caches the
// result for slice-only dispatches, and repages.
func (c *Controller) applyFilters() View {
	filtered := pipeline.FilterByTitle(c.raw, c.search.Term)
	c.sorted = pipeline.ApplySort(filtered, c.sort)
	return c.updateDisplay()
}

// updateDisplay slices the cached sorted collection for the current page,
// absorbing the clamped page state.
func (c *Controller) updateDisplay() View {
	items, page := c.page.Slice(c.sorted)
	c.page = page
	return View{Items: items, Page: page}
}
