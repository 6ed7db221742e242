package service

import (
	"context"
	"fmt"

	"cats-shop/internal/model"
	"cats-shop/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves the full catalog.
func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")
	return products, nil
}

// Get retrieves a single product by ID.
func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create adds a new product after validating required fields.
func (s *productService) Create(ctx context.Context, product model.Product) error {
	if err := s.validateProduct(product); err != nil {
		return err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if derr, ok := err.(*model.DomainError); ok {
			return derr
		}
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID).Msg("product created")
	return nil
}

// Update replaces an existing product record.
func (s *productService) Update(ctx context.Context, product model.Product) error {
	if product.ID == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Product ID is required")
	}
	if err := s.validateSchedule(product); err != nil {
		return err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if derr, ok := err.(*model.DomainError); ok {
			return derr
		}
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID).Msg("product updated")
	return nil
}

// Delete removes a product by ID.
func (s *productService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Product ID is required")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// validateProduct enforces the creation requirements: id, Ukrainian name and
// a positive single price.
func (s *productService) validateProduct(product model.Product) error {
	if product.ID == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Product ID is required")
	}
	if product.Name.UK == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Ukrainian product name is required")
	}
	if product.Price.Single <= 0 {
		return model.NewDomainError(model.ErrCodeMissingField, "Single price must be greater than zero")
	}
	return s.validateSchedule(product)
}

// validateSchedule rejects misconfigured tier tables and logs warnings for
// data accepted as-is.
func (s *productService) validateSchedule(product model.Product) error {
	warnings, err := product.Price.Validate()
	if err != nil {
		s.logger.Warn().Err(err).Str("product_id", product.ID).Msg("rejected misconfigured price schedule")
		return model.ErrConfiguration
	}
	for _, w := range warnings {
		s.logger.Warn().
			Str("product_id", product.ID).
			Str("warning", w).
			Msg("price schedule accepted with warning")
	}
	return nil
}
