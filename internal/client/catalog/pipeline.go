package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// State is the pipeline's lifecycle position. Any completed state can be
// driven back to StateLoading by another FetchAll.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// DefaultMinLoading keeps the loading state perceptible. This is a UX
// floor, not a correctness requirement; tests run with 0.
const DefaultMinLoading = time.Second

// Pipeline fetches the catalog and holds the resulting state. Each FetchAll
// takes a monotonic request token; a response whose token has been
// superseded is discarded, so a slow early request can never clobber a
// fresher result.
type Pipeline struct {
	client     Client
	log        logging.Logger
	minLoading time.Duration

	token atomic.Uint64

	mu         sync.Mutex
	state      State
	items      []models.CatalogItem
	categories []string
	errMsg     string
}

func NewPipeline(client Client, log logging.Logger, minLoading time.Duration) *Pipeline {
	return &Pipeline{
		client:     client,
		log:        log.With("component", "catalog"),
		minLoading: minLoading,
		state:      StateIdle,
	}
}

// FetchAll requests the full catalog and transitions the pipeline to ready
// or error. Calling it again is the retry path after an error; there is no
// automatic retry. The call blocks for at least the minimum loading
// duration so the loading state stays visible.
func (p *Pipeline) FetchAll(ctx context.Context) {
	token := p.token.Add(1)

	p.mu.Lock()
	p.state = StateLoading
	p.mu.Unlock()

	start := time.Now()
	items, err := p.client.List(ctx)

	// await the slower of the request and the visibility floor
	if wait := p.minLoading - time.Since(start); wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if token != p.token.Load() {
		// a newer FetchAll owns the state now
		p.log.Debug(ctx, "discarding superseded catalog response", "token", token)
		return
	}

	if err != nil {
		p.log.Error(ctx, "catalog fetch failed", "error", err)
		p.state = StateError
		p.errMsg = err.Error()
		return
	}

	p.state = StateReady
	p.items = items
	p.categories = Categories(items)
	p.errMsg = ""
	p.log.Info(ctx, "catalog ready", "items", len(items))
}

// State returns the current lifecycle position.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Items returns a copy of the fetched collection in arrival order.
func (p *Pipeline) Items() []models.CatalogItem {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]models.CatalogItem, len(p.items))
	copy(items, p.items)
	return items
}

// Categories returns the filter choices for the fetched collection.
func (p *Pipeline) Categories() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	categories := make([]string, len(p.categories))
	copy(categories, p.categories)
	return categories
}

// Err returns the human-readable failure message while in StateError.
func (p *Pipeline) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// Search runs Query over the fetched collection.
func (p *Pipeline) Search(opts Options) []models.CatalogItem {
	return Query(p.Items(), opts)
}
