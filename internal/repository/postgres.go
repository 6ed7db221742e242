package repository

import (
	"context"
	"errors"
	"fmt"

	"cats-shop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresStore implements ProductRepository using PostgreSQL. Localized
// text fields and tier prices live in dedicated columns so the table stays
// queryable without JSON operators.
type postgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgreSQL-backed product repository.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &postgresStore{
		pool:   pool,
		logger: logger.With().Str("repository", "product-postgres").Logger(),
	}
}

const productColumns = `
	id, id_number, name_uk, name_ru, description_uk, description_ru,
	price_single, price_from_6, price_from_8, price_from_80
`

// GetAll retrieves the full catalog ordered by numeric id.
func (s *postgresStore) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id_number, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (s *postgresStore) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	row := s.pool.QueryRow(ctx, query, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &p, nil
}

// Create inserts a new product.
func (s *postgresStore) Create(ctx context.Context, product model.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.pool.Exec(ctx, query,
		product.ID, product.IDNumber,
		product.Name.UK, product.Name.RU,
		product.Description.UK, product.Description.RU,
		product.Price.Single, product.Price.From6, product.Price.From8, product.Price.From80,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			s.logger.Warn().Str("product_id", product.ID).Msg("duplicate product id")
			return model.ErrProductExists
		}
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Debug().Str("product_id", product.ID).Msg("product created")
	return nil
}

// Update replaces the record with the matching ID.
func (s *postgresStore) Update(ctx context.Context, product model.Product) error {
	query := `
		UPDATE products SET
			id_number = $2,
			name_uk = $3, name_ru = $4,
			description_uk = $5, description_ru = $6,
			price_single = $7, price_from_6 = $8, price_from_8 = $9, price_from_80 = $10
		WHERE id = $1
	`

	tag, err := s.pool.Exec(ctx, query,
		product.ID, product.IDNumber,
		product.Name.UK, product.Name.RU,
		product.Description.UK, product.Description.RU,
		product.Price.Single, product.Price.From6, product.Price.From8, product.Price.From80,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		s.logger.Debug().Str("product_id", product.ID).Msg("product not found for update")
		return model.ErrProductNotFound
	}

	return nil
}

// Delete removes the product with the given ID.
func (s *postgresStore) Delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// scanProduct maps one row onto the product model.
func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.IDNumber,
		&p.Name.UK, &p.Name.RU,
		&p.Description.UK, &p.Description.RU,
		&p.Price.Single, &p.Price.From6, &p.Price.From8, &p.Price.From80,
	)
	return p, err
}
