// Package models defines the data shapes shared by the storefront stores,
// the catalog pipeline and the CLI.
package models

// Rating mirrors the rating block returned by the catalog API.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// CatalogItem is a single product as served by the remote catalog API.
// Items are external and read-only; they are never mutated locally.
type CatalogItem struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      Rating  `json:"rating"`
}
