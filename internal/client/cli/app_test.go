package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/catalog"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/client/stores"
	"github.com/dmitrijs2005/storefront/internal/logging"

	_ "modernc.org/sqlite"
)

type fakeCatalog struct {
	items   []models.CatalogItem
	listErr error
}

func (f *fakeCatalog) List(ctx context.Context) ([]models.CatalogItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeCatalog) GetByID(ctx context.Context, id int) (*models.CatalogItem, error) {
	for _, item := range f.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, errors.New("product not found")
}

func testItems() []models.CatalogItem {
	return []models.CatalogItem{
		{ID: 1, Title: "Backpack", Price: 109.95, Category: "men's clothing"},
		{ID: 2, Title: "T-Shirt", Price: 22.3, Category: "men's clothing"},
		{ID: 3, Title: "Gold Ring", Price: 168, Category: "jewelery"},
	}
}

// newTestApp builds an App over an in-memory database and a fake catalog.
func newTestApp(t *testing.T, client catalog.Client) (*App, *bytes.Buffer) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE kvstore (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	repo := kv.NewSQLiteRepository(db)
	session := stores.NewSessionStore(repo, log)
	notifier := stores.NewNotifier(session, time.Hour)
	t.Cleanup(notifier.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	app := &App{
		config:   cfg,
		log:      log,
		session:  session,
		cart:     stores.NewCartStore(repo, log),
		notifier: notifier,
		theme:    stores.NewThemeStore(repo, log),
		catalog:  client,
		pipeline: catalog.NewPipeline(client, log, 0),
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      &out,
		query:    catalog.Options{Category: catalog.CategoryAll, SortOrder: catalog.SortDefault},
	}
	app.restore(context.Background())
	return app, &out
}

func stubInputs(t *testing.T, lines []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestDispatch_UnknownCommand(t *testing.T) {
	app, out := newTestApp(t, &fakeCatalog{})

	app.dispatch(context.Background(), "frobnicate", nil)

	require.Contains(t, out.String(), "Unknown command: frobnicate")
}

func TestProducts_ListsFetchedCatalog(t *testing.T) {
	app, out := newTestApp(t, &fakeCatalog{items: testItems()})

	app.Products(context.Background())

	require.Contains(t, out.String(), "Backpack")
	require.Contains(t, out.String(), "3 product(s)")
}

func TestProducts_ErrorState_OffersRetry(t *testing.T) {
	client := &fakeCatalog{listErr: errors.New("connection refused")}
	app, out := newTestApp(t, client)

	app.Products(context.Background())
	require.Contains(t, out.String(), "Failed to load products")
	require.Contains(t, out.String(), "try again")

	// endpoint recovers; the same command is the retry path
	client.listErr = nil
	client.items = testItems()
	out.Reset()
	app.Products(context.Background())
	require.Contains(t, out.String(), "3 product(s)")
}

func TestSearchAndSort_FilterListing(t *testing.T) {
	app, out := newTestApp(t, &fakeCatalog{items: testItems()})
	ctx := context.Background()

	app.Products(ctx)
	out.Reset()

	app.Search(ctx, "shirt")
	require.Contains(t, out.String(), "T-Shirt")
	require.NotContains(t, out.String(), "Gold Ring")

	out.Reset()
	app.Sort(ctx, "nonsense")
	require.Contains(t, out.String(), "Usage: sort")
}

func TestShow_PrintsProductDetail(t *testing.T) {
	app, out := newTestApp(t, &fakeCatalog{items: testItems()})

	app.Show(context.Background(), "3")

	require.Contains(t, out.String(), "Gold Ring")
	require.Contains(t, out.String(), "$168.00")
}

func TestThemeCommand_TogglesAndReports(t *testing.T) {
	app, out := newTestApp(t, &fakeCatalog{})

	app.ToggleTheme(context.Background())

	require.Contains(t, out.String(), "Theme: dark")
}
