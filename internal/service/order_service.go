package service

import (
	"context"
	"fmt"

	"cats-shop/internal/model"
	"cats-shop/internal/order"
	"cats-shop/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	productRepo repository.ProductRepository
	composer    *order.Composer
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	productRepo repository.ProductRepository,
	composer *order.Composer,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		productRepo: productRepo,
		composer:    composer,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// ComposeIntent loads the product, rejects invalid quantities and delegates
// intent assembly and dispatch to the composer.
func (s *orderService) ComposeIntent(ctx context.Context, productID string, quantity int, locale string) (*order.Intent, string, error) {
	if quantity < 1 {
		s.logger.Warn().
			Str("product_id", productID).
			Int("quantity", quantity).
			Msg("invalid quantity")
		return nil, "", model.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to load product")
		return nil, "", fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		s.logger.Debug().Str("product_id", productID).Msg("product not found")
		return nil, "", model.ErrProductNotFound
	}

	intent, link, err := s.composer.Submit(ctx, product, quantity, locale)
	if err != nil {
		return intent, "", err
	}

	s.logger.Info().
		Str("product_id", productID).
		Int("quantity", quantity).
		Int("total_price", intent.TotalPrice).
		Str("tier", string(intent.Tier)).
		Msg("order intent composed")

	return intent, link, nil
}
