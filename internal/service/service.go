package service

import (
	"context"

	"cats-shop/internal/model"
	"cats-shop/internal/order"
)

// ProductService defines operations for catalog management.
type ProductService interface {
	// List retrieves the full catalog.
	List(ctx context.Context) ([]model.Product, error)

	// Get retrieves a single product by ID.
	Get(ctx context.Context, id string) (*model.Product, error)

	// Create adds a new product after validating required fields.
	Create(ctx context.Context, product model.Product) error

	// Update replaces an existing product record.
	Update(ctx context.Context, product model.Product) error

	// Delete removes a product by ID.
	Delete(ctx context.Context, id string) error
}

// OrderService composes and dispatches order intents.
type OrderService interface {
	// ComposeIntent prices the requested quantity for the product and hands
	// the resulting intent to the dispatch channel, returning the intent and
	// the deep link the customer should follow.
	ComposeIntent(ctx context.Context, productID string, quantity int, locale string) (*order.Intent, string, error)
}
