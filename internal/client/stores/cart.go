package stores

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// CartStore owns the cart lines. Lines keep insertion order, product ids
// are unique within the cart, and every mutation is written through before
// it returns. Totals are always recomputed from the lines, never cached.
type CartStore struct {
	repo kv.Repository
	log  logging.Logger

	mu    sync.Mutex
	lines []models.CartLine
}

func NewCartStore(repo kv.Repository, log logging.Logger) *CartStore {
	return &CartStore{repo: repo, log: log.With("store", "cart")}
}

// Restore loads the persisted cart. Missing or malformed data degrades to
// an empty cart.
func (c *CartStore) Restore(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil

	data, err := c.repo.Get(ctx, keyCart)
	if err != nil {
		c.log.Warn(ctx, "failed to read cart", "error", err)
		return
	}
	if data == nil {
		return
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		c.log.Warn(ctx, "corrupt cart, starting empty", "error", err)
		return
	}
	c.lines = lines
}

// AddItem increments the quantity of an existing line for the same product,
// or appends a new line with quantity 1.
func (c *CartStore) AddItem(ctx context.Context, item models.CatalogItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == item.ID {
			c.lines[i].Quantity++
			return c.persist(ctx)
		}
	}

	c.lines = append(c.lines, models.CartLine{
		ProductID: item.ID,
		Title:     item.Title,
		Price:     item.Price,
		Image:     item.Image,
		Quantity:  1,
	})
	return c.persist(ctx)
}

// RemoveItem drops the line for productID. Removing an absent product is a
// no-op, not an error.
func (c *CartStore) RemoveItem(ctx context.Context, productID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(ctx, productID)
}

// SetQuantity overwrites the quantity of an existing line. A quantity below
// one removes the line; an absent product id is a no-op.
func (c *CartStore) SetQuantity(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		return c.RemoveItem(ctx, productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return c.persist(ctx)
		}
	}
	return nil
}

// Clear empties the cart and persists the empty state.
func (c *CartStore) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	return c.persist(ctx)
}

// Lines returns a copy of the cart lines in insertion order.
func (c *CartStore) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Totals recomputes the derived totals from the current lines.
func (c *CartStore) Totals() (totalItems int, totalPrice float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, line := range c.lines {
		totalItems += line.Quantity
		totalPrice += line.Price * float64(line.Quantity)
	}
	return totalItems, totalPrice
}

func (c *CartStore) removeLocked(ctx context.Context, productID int) error {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return c.persist(ctx)
		}
	}
	return nil
}

// persist writes the current lines through to the repository. Callers must
// hold c.mu.
func (c *CartStore) persist(ctx context.Context) error {
	lines := c.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := c.repo.Set(ctx, keyCart, data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
