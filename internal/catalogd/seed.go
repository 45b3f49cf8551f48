package catalogd

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

//go:embed seed.json
var seedData []byte

// Seed returns the embedded demo catalog.
func Seed() ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	if err := json.Unmarshal(seedData, &items); err != nil {
		return nil, fmt.Errorf("failed to decode embedded seed: %w", err)
	}
	return items, nil
}
