package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/catalog"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/client/stores"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// App wires the stores and the catalog pipeline behind the REPL. All stores
// are constructed once at process start and passed by reference; there is
// no hidden global state.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	session  *stores.SessionStore
	cart     *stores.CartStore
	notifier *stores.Notifier
	theme    *stores.ThemeStore
	catalog  catalog.Client
	pipeline *catalog.Pipeline

	reader *bufio.Reader
	out    io.Writer

	// current product query, adjusted by search/category/sort commands
	query catalog.Options
}

// NewApp opens the local database, constructs the stores and restores their
// persisted state.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := kv.NewSQLiteRepository(db)
	session := stores.NewSessionStore(repo, log)
	cart := stores.NewCartStore(repo, log)
	theme := stores.NewThemeStore(repo, log)
	notifier := stores.NewNotifier(session, cfg.NotificationTTL)
	client := catalog.NewHTTPClient(cfg.CatalogBaseURL)

	app := &App{
		config:   cfg,
		log:      log,
		db:       db,
		session:  session,
		cart:     cart,
		notifier: notifier,
		theme:    theme,
		catalog:  client,
		pipeline: catalog.NewPipeline(client, log, cfg.MinLoadingDelay),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		query:    catalog.Options{Category: catalog.CategoryAll, SortOrder: catalog.SortDefault},
	}

	app.restore(ctx)
	return app, nil
}

// restore replays the persisted state into the stores at startup.
func (a *App) restore(ctx context.Context) {
	a.session.Restore(ctx)
	a.cart.Restore(ctx)
	a.theme.Restore(ctx)
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the notifier timer and the database handle.
func (a *App) Close() {
	a.notifier.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
