// Package catalog fetches the remote product collection and drives the
// loading/error/ready query pipeline over it.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// Client is the remote catalog collaborator.
type Client interface {
	List(ctx context.Context) ([]models.CatalogItem, error)
	GetByID(ctx context.Context, id int) (*models.CatalogItem, error)
}

// HTTPClient talks to the catalog API over HTTP/JSON:
//
//	GET {base}/products        -> [CatalogItem]
//	GET {base}/products/{id}   -> CatalogItem
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) List(ctx context.Context) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	if err := c.getJSON(ctx, c.baseURL+"/products", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) GetByID(ctx context.Context, id int) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := c.getJSON(ctx, fmt.Sprintf("%s/products/%d", c.baseURL, id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrCatalogFetch, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrCatalogFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %s", common.ErrCatalogFetch, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", common.ErrCatalogFetch, err)
	}
	return nil
}
