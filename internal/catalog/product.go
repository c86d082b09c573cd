// Package catalog defines the product model and the remote catalog source.
package catalog

// Category groups related products. Only the name is displayed.
type Category struct {
	Name string `json:"name"`
}

// Product is a single catalog entry as the API returns it.
//
// Optional fields stay nil or empty when the API omits them - the pipeline
// must be able to tell "absent" from "zero". A Product is never mutated
// after it is fetched; every transformation downstream produces new slices.
type Product struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Price       *float64  `json:"price"`
	Description string    `json:"description"`
	Category    *Category `json:"category"`
	Images      []string  `json:"images"`
}

// PriceValue returns the price, or 0 when the API omitted it.
// Comparison code treats a missing price as free rather than dropping the item.
func (p Product) PriceValue() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// CategoryName returns the category name, or "" when absent.
func (p Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}
