// Package database owns the PostgreSQL connection pool lifecycle: connect on
// startup, bootstrap the schema, close on shutdown.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool and verifies it with a short ping. Callers treat a
// returned error as "run degraded" rather than fatal: the storefront works
// without the database, only order history does not.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the tables the app needs if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			price    INTEGER NOT NULL CHECK (price >= 0),
			category TEXT NOT NULL,
			position SERIAL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id             UUID PRIMARY KEY,
			code           TEXT NOT NULL,
			customer_name  TEXT NOT NULL DEFAULT '',
			items          JSONB NOT NULL,
			total_amount   INTEGER NOT NULL,
			order_status   TEXT NOT NULL,
			payment_status TEXT NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
