package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/storefront/internal/flagx"
	"github.com/dmitrijs2005/storefront/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	CatalogBaseURL  string         `json:"catalog_base_url"`
	DatabaseDSN     string         `json:"database_dsn"`
	MinLoadingDelay timex.Duration `json:"min_loading_delay"`
	NotificationTTL timex.Duration `json:"notification_ttl"`
}

// parseJson overlays Config with values loaded from a JSON file selected by
// the -c or -config flags. Absent fields keep their earlier values; read or
// unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.CatalogBaseURL != "" {
		cfg.CatalogBaseURL = jc.CatalogBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.MinLoadingDelay.Duration != 0 {
		cfg.MinLoadingDelay = time.Duration(jc.MinLoadingDelay.Duration)
	}
	if jc.NotificationTTL.Duration != 0 {
		cfg.NotificationTTL = time.Duration(jc.NotificationTTL.Duration)
	}
}
