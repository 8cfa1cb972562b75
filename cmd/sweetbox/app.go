package main

import (
	"context"
	"fmt"
	"os"

	"sweetbox/internal/catalog"
	"sweetbox/internal/config"
	"sweetbox/internal/database"
	"sweetbox/internal/service"
	"sweetbox/internal/storage"
	"sweetbox/internal/view"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cliLogLevel keeps shopper commands quiet unless LOG_LEVEL or --log-level
// asks for more.
const cliLogLevel = "warn"

// loadConfig reads the environment and applies the persistent flags.
func loadConfig(defaultLevel string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if flagCatalog != "" {
		cfg.Catalog.Path = flagCatalog
	}
	if flagStorage != "" {
		cfg.Storage.Backend = flagStorage
	}
	if flagStorageDir != "" {
		cfg.Storage.Dir = flagStorageDir
	}
	switch {
	case flagLogLevel != "":
		cfg.Logger.Level = flagLogLevel
	case defaultLevel != "" && os.Getenv("LOG_LEVEL") == "":
		cfg.Logger.Level = defaultLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// app holds the storefront components shared by every command.
type app struct {
	cfg        *config.Config
	logger     zerolog.Logger
	pool       *pgxpool.Pool
	catalog    catalog.Store
	backend    storage.Backend
	dispatcher *view.Dispatcher
	products   service.ProductService
	carts      service.CartService
}

func newApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger}

	if cfg.UsesDatabase() {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
		a.pool = pool
	}

	store, err := a.openCatalog(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.catalog = store

	backend, err := a.openStorage()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.backend = backend

	a.dispatcher = view.NewDispatcher(store, cfg.Shop.CurrencySuffix, logger)
	a.products = service.NewProductService(store, logger)
	a.carts = service.NewCartService(backend, a.dispatcher, logger)

	return a, nil
}

// Close releases the database pool, if any.
func (a *app) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *app) openCatalog(ctx context.Context) (catalog.Store, error) {
	if a.cfg.Catalog.Source == config.CatalogPostgres {
		a.logger.Info().Msg("serving catalogue from postgres")
		return catalog.NewPostgresRepository(a.pool, a.logger), nil
	}

	fileLoader := catalog.NewFileLoader(a.logger)
	loader := fileLoader

	if a.cfg.Catalog.Source == config.CatalogS3 {
		s3Loader, err := catalog.NewS3Loader(ctx, a.cfg.S3.Bucket, a.cfg.S3.Region, a.logger)
		if err != nil {
			a.logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			loader = catalog.NewFallbackLoader(s3Loader, fileLoader, a.cfg.S3.Prefix, a.logger)
		}
	}

	products, err := loader.Load(ctx, a.cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}

	a.logger.Info().
		Str("source", a.cfg.Catalog.Source).
		Int("products", len(products)).
		Msg("catalogue loaded")

	return catalog.NewStatic(products), nil
}

func (a *app) openStorage() (storage.Backend, error) {
	switch a.cfg.Storage.Backend {
	case config.StorageMemory:
		return storage.NewMemory(), nil
	case config.StoragePostgres:
		return storage.NewPostgres(a.pool, a.logger), nil
	default:
		f, err := storage.NewFile(a.cfg.Storage.Dir, a.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open cart storage: %w", err)
		}
		return f, nil
	}
}
