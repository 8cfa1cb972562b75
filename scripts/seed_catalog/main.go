// Command seed_catalog loads a catalogue document into the PostgreSQL
// products table used by CATALOG_SOURCE=postgres.
//
// Usage:
//
//	go run ./scripts/seed_catalog [catalog.yaml]
//
// The database is configured with the same DB_* variables as the server.
package main

import (
	"context"
	"fmt"
	"os"

	"sweetbox/internal/catalog"
	"sweetbox/internal/config"
	"sweetbox/internal/database"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	path := "data/catalog.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := config.NewLogger(cfg.Logger)

	ctx := context.Background()

	products, err := catalog.NewFileLoader(logger).Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		return fmt.Errorf("failed to query database name: %w", err)
	}

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return err
	}

	if err := catalog.NewPostgresRepository(pool, logger).Replace(ctx, products); err != nil {
		return fmt.Errorf("failed to seed catalogue: %w", err)
	}

	fmt.Printf("Seeded %d products from %s into database %s\n", len(products), path, dbName)
	return nil
}
