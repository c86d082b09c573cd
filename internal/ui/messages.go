// Package ui provides the Bubble Tea TUI for shopfront.
package ui

import "github.com/calebwray/shopfront/internal/catalog"

// CatalogLoaded is sent when the initial load or a manual refresh finishes.
type CatalogLoaded struct {
	Products  []catalog.Product
	Err       error
	FromCache bool // true when read from the offline snapshot
}
