package catalog

import (
	"sort"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "all"

// Sort orders accepted by Query. Anything else preserves arrival order.
const (
	SortDefault   = "default"
	SortLowToHigh = "low-to-high"
	SortHighToLow = "high-to-low"
)

// Options narrow and order the fetched collection.
type Options struct {
	SearchTerm string
	Category   string
	SortOrder  string
}

// Query filters and sorts items without touching the pipeline state.
// The search term matches the title case-insensitively, the category must
// match exactly unless it is CategoryAll, and price sorting is stable so
// equal prices keep their arrival order.
func Query(items []models.CatalogItem, opts Options) []models.CatalogItem {
	term := strings.ToLower(opts.SearchTerm)

	result := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if term != "" && !strings.Contains(strings.ToLower(item.Title), term) {
			continue
		}
		if opts.Category != "" && opts.Category != CategoryAll && item.Category != opts.Category {
			continue
		}
		result = append(result, item)
	}

	switch opts.SortOrder {
	case SortLowToHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortHighToLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}

	return result
}

// Categories enumerates the filter choices for a fetched collection:
// CategoryAll first, then each distinct category in first-seen order.
func Categories(items []models.CatalogItem) []string {
	categories := []string{CategoryAll}
	seen := map[string]struct{}{}
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories
}
