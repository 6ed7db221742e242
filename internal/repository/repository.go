package repository

import (
	"context"

	"cats-shop/internal/model"
)

// ProductRepository defines the interface for product data access
// operations. Two backends implement it: the JSON product file the admin
// board edits in place, and a postgres table for deployments that outgrow
// the flat file.
type ProductRepository interface {
	// GetAll retrieves the full catalog.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a new product. Fails when the ID is already taken.
	Create(ctx context.Context, product model.Product) error

	// Update replaces the record with the matching ID.
	Update(ctx context.Context, product model.Product) error

	// Delete removes the product with the given ID. Deleting an unknown ID
	// is not an error, matching the original filter-out semantics.
	Delete(ctx context.Context, id string) error
}
