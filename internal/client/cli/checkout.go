package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Checkout completes the purchase: it requires an authenticated session and
// a non-empty cart, prints a receipt, shows the confirmation and clears the
// cart.
func (a *App) Checkout(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login to checkout (use 'login' or 'register')")
		return
	}

	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty")
		return
	}

	_, total := a.cart.Totals()
	receipt := models.Receipt{
		OrderID: uuid.NewString(),
		Lines:   lines,
		Total:   total,
	}

	fmt.Fprintf(a.out, "Order %s\n", receipt.OrderID)
	for _, line := range receipt.Lines {
		fmt.Fprintf(a.out, "  %s x %d = $%.2f\n", line.Title, line.Quantity, line.Price*float64(line.Quantity))
	}
	fmt.Fprintf(a.out, "  Total: $%.2f\n", receipt.Total)

	if err := a.cart.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear cart after checkout", "error", err)
	}
	a.notifier.Show("Checkout successful! Thank you for your purchase.", models.NotificationSuccess)
}
