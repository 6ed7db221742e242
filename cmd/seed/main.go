// Command seed writes the default catalog into the configured product
// store. Products already present are left untouched, so re-running is
// safe.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"cats-shop/internal/config"
	"cats-shop/internal/database"
	"cats-shop/internal/model"
	"cats-shop/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var repo repository.ProductRepository
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to ensure database schema: %w", err)
		}
		repo = repository.NewPostgresStore(pool, logger)

	default:
		repo = repository.NewFileStore(cfg.Store.ProductsFile, logger)
	}

	seeded := 0
	for _, product := range repository.DefaultCatalog().Products {
		err := repo.Create(ctx, product)
		if errors.Is(err, model.ErrProductExists) {
			logger.Info().Str("product_id", product.ID).Msg("product already present, skipping")
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", product.ID, err)
		}
		seeded++
	}

	logger.Info().Int("seeded", seeded).Msg("catalog seeding completed")
	return nil
}
