package database

import (
	"context"
	"fmt"
	"time"

	"cats-shop/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPool creates a new PostgreSQL connection pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// Configure pool settings
	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("database connection pool created successfully")

	return pool, nil
}

// productsSchema is the table behind the postgres product store. Tier price
// columns are nullable so both historical schedule shapes round-trip.
const productsSchema = `
CREATE TABLE IF NOT EXISTS products (
	id             TEXT PRIMARY KEY,
	id_number      INTEGER NOT NULL DEFAULT 0,
	name_uk        TEXT NOT NULL DEFAULT '',
	name_ru        TEXT NOT NULL DEFAULT '',
	description_uk TEXT NOT NULL DEFAULT '',
	description_ru TEXT NOT NULL DEFAULT '',
	price_single   DOUBLE PRECISION NOT NULL DEFAULT 0,
	price_from_6   DOUBLE PRECISION,
	price_from_8   DOUBLE PRECISION,
	price_from_80  DOUBLE PRECISION
)
`

// EnsureSchema creates the products table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, productsSchema); err != nil {
		return fmt.Errorf("failed to create products schema: %w", err)
	}
	logger.Debug().Msg("products schema ensured")
	return nil
}
