package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/catalog"
	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Add puts a product into the cart, incrementing quantity when the product
// is already there.
func (a *App) Add(ctx context.Context, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: add <id>")
		return
	}

	item, err := a.findItem(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load product %d: %s\n", id, err)
		return
	}

	if err := a.cart.AddItem(ctx, *item); err != nil {
		a.log.Error(ctx, "failed to add to cart", "error", err)
		return
	}
	a.notifier.Show(fmt.Sprintf("%s added to cart!", item.Title), models.NotificationSuccess)
}

// Cart prints the lines and the derived totals.
func (a *App) Cart(ctx context.Context) {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty")
		return
	}

	for _, line := range lines {
		fmt.Fprintf(a.out, "%4d  %-40s %3d x $%8.2f = $%8.2f\n",
			line.ProductID, line.Title, line.Quantity, line.Price, line.Price*float64(line.Quantity))
	}
	items, total := a.cart.Totals()
	fmt.Fprintf(a.out, "Total: %d item(s), $%.2f\n", items, total)
}

// SetQuantity overwrites a line's quantity; zero removes the line.
func (a *App) SetQuantity(ctx context.Context, rawID, rawQuantity string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: qty <id> <quantity>")
		return
	}
	quantity, err := strconv.Atoi(rawQuantity)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: qty <id> <quantity>")
		return
	}

	if err := a.cart.SetQuantity(ctx, id, quantity); err != nil {
		a.log.Error(ctx, "failed to update quantity", "error", err)
	}
}

// Remove drops a line from the cart.
func (a *App) Remove(ctx context.Context, rawID string) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: remove <id>")
		return
	}

	if err := a.cart.RemoveItem(ctx, id); err != nil {
		a.log.Error(ctx, "failed to remove from cart", "error", err)
	}
}

// findItem resolves a product from the fetched collection, falling back to
// a single-item fetch when the catalog has not been listed yet.
func (a *App) findItem(ctx context.Context, id int) (*models.CatalogItem, error) {
	if a.pipeline.State() == catalog.StateReady {
		for _, item := range a.pipeline.Items() {
			if item.ID == id {
				return &item, nil
			}
		}
	}
	return a.catalog.GetByID(ctx, id)
}
