package integration

import (
	"context"
	"testing"
	"time"

	"cats-shop/internal/database"
	"cats-shop/internal/model"
	"cats-shop/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedCatalog inserts the default catalog through the store under test.
func SeedCatalog(t *testing.T, repo repository.ProductRepository) {
	t.Helper()

	ctx := context.Background()
	for _, product := range repository.DefaultCatalog().Products {
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("failed to seed product %s: %v", product.ID, err)
		}
	}
}

// CleanupDB removes all products.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM products"); err != nil {
		t.Logf("failed to clean products table: %v", err)
	}
}

func floatPtr(f float64) *float64 { return &f }

func threeTierProduct() model.Product {
	return model.Product{
		ID:       "cats-fresh-xl",
		IDNumber: 2,
		Name:     model.LocalizedText{UK: "Наповнювач XL", RU: "Наполнитель XL"},
		Description: model.LocalizedText{
			UK: "Великий мішок",
			RU: "Большой мешок",
		},
		Price: model.PriceSchedule{
			Single: 280,
			From8:  floatPtr(250),
			From80: floatPtr(200),
		},
	}
}
