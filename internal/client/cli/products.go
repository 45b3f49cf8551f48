package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/catalog"
)

// Products refetches the catalog and lists it through the current query.
// After an error the same command is the retry affordance.
func (a *App) Products(ctx context.Context) {
	fmt.Fprintln(a.out, "Loading products...")
	a.pipeline.FetchAll(ctx)

	if a.pipeline.State() == catalog.StateError {
		fmt.Fprintf(a.out, "Failed to load products: %s\n", a.pipeline.Err())
		fmt.Fprintln(a.out, "Run 'products' to try again")
		return
	}

	a.list()
}

func (a *App) list() {
	items := a.pipeline.Search(a.query)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No products match the current filters")
		return
	}

	for _, item := range items {
		fmt.Fprintf(a.out, "%4d  $%8.2f  %-20s %s\n", item.ID, item.Price, item.Category, item.Title)
	}
	fmt.Fprintf(a.out, "%d product(s)\n", len(items))
}

// Search narrows the listing to titles containing term.
func (a *App) Search(ctx context.Context, term string) {
	a.query.SearchTerm = term
	a.relist(ctx)
}

// Categories lists the filter choices observed in the fetched collection.
func (a *App) Categories(ctx context.Context) {
	a.ensureFetched(ctx)
	for _, category := range a.pipeline.Categories() {
		fmt.Fprintln(a.out, category)
	}
}

// Category narrows the listing to one category; "all" clears the filter.
func (a *App) Category(ctx context.Context, category string) {
	if category == "" {
		category = catalog.CategoryAll
	}
	a.query.Category = category
	a.relist(ctx)
}

// Sort sets the price order: default, low-to-high or high-to-low.
func (a *App) Sort(ctx context.Context, order string) {
	switch order {
	case catalog.SortDefault, catalog.SortLowToHigh, catalog.SortHighToLow:
		a.query.SortOrder = order
		a.relist(ctx)
	default:
		fmt.Fprintln(a.out, "Usage: sort <default|low-to-high|high-to-low>")
	}
}

// Show fetches and prints a single product.
func (a *App) Show(ctx context.Context, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return
	}

	item, err := a.catalog.GetByID(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load product %d: %s\n", id, err)
		return
	}

	fmt.Fprintf(a.out, "%s\n", item.Title)
	fmt.Fprintf(a.out, "  price:    $%.2f\n", item.Price)
	fmt.Fprintf(a.out, "  category: %s\n", item.Category)
	fmt.Fprintf(a.out, "  rating:   %.1f (%d reviews)\n", item.Rating.Rate, item.Rating.Count)
	if item.Description != "" {
		fmt.Fprintf(a.out, "  %s\n", strings.TrimSpace(item.Description))
	}
}

// ensureFetched fetches the catalog once when it has not been loaded yet.
func (a *App) ensureFetched(ctx context.Context) {
	if a.pipeline.State() != catalog.StateReady {
		a.pipeline.FetchAll(ctx)
	}
}

func (a *App) relist(ctx context.Context) {
	a.ensureFetched(ctx)
	if a.pipeline.State() != catalog.StateReady {
		fmt.Fprintf(a.out, "Failed to load products: %s\n", a.pipeline.Err())
		return
	}
	a.list()
}
