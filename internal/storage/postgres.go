package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Postgres stores namespaces as rows of the local_storage table.
type Postgres struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgres creates a PostgreSQL-backed storage backend.
// The local_storage table is created by database.Migrate.
func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) *Postgres {
	return &Postgres{
		pool:   pool,
		logger: logger.With().Str("component", "postgres-storage").Logger(),
	}
}

// Namespace returns the view of one namespace.
func (p *Postgres) Namespace(name string) (KV, error) {
	if !ValidNamespace(name) {
		return nil, ErrInvalidNamespace
	}
	return &postgresKV{parent: p, ns: name}, nil
}

type postgresKV struct {
	parent *Postgres
	ns     string
}

func (kv *postgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM local_storage
		WHERE namespace = $1 AND key = $2
	`

	var value string
	err := kv.parent.pool.QueryRow(ctx, query, kv.ns, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		kv.parent.logger.Error().Err(err).
			Str("namespace", kv.ns).
			Str("key", key).
			Msg("failed to query storage key")
		return "", false, fmt.Errorf("failed to query storage key: %w", err)
	}

	return value, true, nil
}

func (kv *postgresKV) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO local_storage (namespace, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := kv.parent.pool.Exec(ctx, query, kv.ns, key, value); err != nil {
		kv.parent.logger.Error().Err(err).
			Str("namespace", kv.ns).
			Str("key", key).
			Msg("failed to store key")
		return fmt.Errorf("failed to store key: %w", err)
	}
	return nil
}

func (kv *postgresKV) Remove(ctx context.Context, key string) error {
	query := `DELETE FROM local_storage WHERE namespace = $1 AND key = $2`

	if _, err := kv.parent.pool.Exec(ctx, query, kv.ns, key); err != nil {
		kv.parent.logger.Error().Err(err).
			Str("namespace", kv.ns).
			Str("key", key).
			Msg("failed to remove key")
		return fmt.Errorf("failed to remove key: %w", err)
	}
	return nil
}
