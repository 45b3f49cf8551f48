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

// ThemeStore owns the appearance mode. Toggle persists synchronously and
// notifies observers so downstream color derivation recomputes.
type ThemeStore struct {
	repo kv.Repository
	log  logging.Logger

	mu      sync.Mutex
	current models.Theme
	subs    []func(models.Theme)
}

func NewThemeStore(repo kv.Repository, log logging.Logger) *ThemeStore {
	return &ThemeStore{repo: repo, log: log.With("store", "theme"), current: models.ThemeLight}
}

// Restore loads the persisted theme, defaulting to light when absent or
// unreadable.
func (t *ThemeStore) Restore(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = models.ThemeLight

	data, err := t.repo.Get(ctx, keyTheme)
	if err != nil {
		t.log.Warn(ctx, "failed to read theme", "error", err)
		return
	}
	if data == nil {
		return
	}

	var theme models.Theme
	if err := json.Unmarshal(data, &theme); err != nil {
		t.log.Warn(ctx, "corrupt theme, using light", "error", err)
		return
	}
	if theme == models.ThemeLight || theme == models.ThemeDark {
		t.current = theme
	}
}

// Toggle flips light/dark, persists the new value and notifies observers.
func (t *ThemeStore) Toggle(ctx context.Context) error {
	t.mu.Lock()

	next := models.ThemeLight
	if t.current == models.ThemeLight {
		next = models.ThemeDark
	}

	data, err := json.Marshal(next)
	if err != nil {
		t.mu.Unlock()
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	if err := t.repo.Set(ctx, keyTheme, data); err != nil {
		t.mu.Unlock()
		return fmt.Errorf("failed to save theme: %w", err)
	}

	t.current = next
	subs := make([]func(models.Theme), len(t.subs))
	copy(subs, t.subs)
	t.mu.Unlock()

	// observers run outside the lock so they may read the store
	for _, fn := range subs {
		fn(next)
	}
	return nil
}

// Current returns the active theme.
func (t *ThemeStore) Current() models.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Subscribe registers an observer called after every successful Toggle.
func (t *ThemeStore) Subscribe(fn func(models.Theme)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs = append(t.subs, fn)
}
