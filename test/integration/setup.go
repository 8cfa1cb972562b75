// Package integration runs the storefront end to end against PostgreSQL:
// the catalogue table, the cart key-value table and the HTTP router.
package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"sweetbox/internal/catalog"
	"sweetbox/internal/handler"
	"sweetbox/internal/model"
	"sweetbox/internal/router"
	"sweetbox/internal/service"
	"sweetbox/internal/storage"
	"sweetbox/internal/testutil"
	"sweetbox/internal/view"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// catalogFile is the sample catalogue shipped with the repository.
const catalogFile = "../../data/catalog.yaml"

// visitorCookie matches the server default.
const visitorCookie = "sweetbox_visitor"

// TestDB represents a test database instance.
type TestDB struct {
	Pool *pgxpool.Pool
}

// SetupTestDB starts a PostgreSQL container with the storefront schema.
// Skipped in -short mode.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	return &TestDB{Pool: testutil.SetupPostgres(t)}
}

// SeedCatalog loads the sample catalogue into the products table and
// returns what was loaded.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) []model.Product {
	t.Helper()

	ctx := context.Background()
	logger := zerolog.Nop()

	products, err := catalog.NewFileLoader(logger).Load(ctx, catalogFile)
	if err != nil {
		t.Fatalf("failed to load sample catalogue: %v", err)
	}
	if err := catalog.NewPostgresRepository(pool, logger).Replace(ctx, products); err != nil {
		t.Fatalf("failed to seed catalogue: %v", err)
	}
	return products
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"local_storage", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

// NewServer wires a storefront the way `sweetbox serve` does with
// CATALOG_SOURCE=postgres and STORAGE_BACKEND=postgres. Two servers built over
// the same pool share carts, as two replicas would.
func NewServer(t *testing.T, pool *pgxpool.Pool) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	store := catalog.NewPostgresRepository(pool, logger)
	backend := storage.NewPostgres(pool, logger)

	renderer, err := view.NewRenderer("₴", logger)
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	products := service.NewProductService(store, logger)
	carts := service.NewCartService(backend, view.NewDispatcher(store, "₴", logger), logger)

	return router.New(router.Handlers{
		Pages:    handler.NewPageHandler(products, carts, renderer, logger),
		Products: handler.NewProductHandler(products, logger),
		Cart:     handler.NewCartHandler(carts, logger),
	}, visitorCookie, logger)
}
