package order

import (
	"context"
	"sync/atomic"

	"cats-shop/internal/model"
	"cats-shop/internal/pricing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Composer validates a committed quantity, prices it and assembles the
// outbound order intent. At most one dispatch may be in flight per composer;
// the busy flag is composer state, not process-wide.
type Composer struct {
	dispatcher Dispatcher
	busy       atomic.Bool
	logger     zerolog.Logger
}

// NewComposer creates an order intent composer.
func NewComposer(dispatcher Dispatcher, logger zerolog.Logger) *Composer {
	return &Composer{
		dispatcher: dispatcher,
		logger:     logger.With().Str("component", "order-composer").Logger(),
	}
}

// Submit builds and dispatches an order intent for the product. It no-ops
// with an error when no product is loaded or a dispatch is already in
// flight. The locale is normalised to the supported set before it enters the
// payload. Dispatch failures are surfaced as non-fatal errors and never
// block a later attempt: the busy flag is cleared regardless of outcome.
func (c *Composer) Submit(ctx context.Context, product *model.Product, quantity int, locale string) (*Intent, string, error) {
	if product == nil {
		c.logger.Warn().Msg("submit called without a loaded product")
		return nil, "", model.ErrNoProduct
	}
	if quantity < 1 {
		c.logger.Warn().Int("quantity", quantity).Str("product_id", product.ID).Msg("invalid quantity")
		return nil, "", model.ErrInvalidQuantity
	}

	if !c.busy.CompareAndSwap(false, true) {
		c.logger.Warn().Str("product_id", product.ID).Msg("dispatch already in flight")
		return nil, "", model.ErrDispatchInFlight
	}
	defer c.busy.Store(false)

	quote := pricing.Calculate(product.Price, quantity)

	intent := &Intent{
		ID:         uuid.New(),
		ProductID:  product.ID,
		IDNumber:   product.IDNumber,
		Quantity:   quantity,
		UnitPrice:  quote.UnitPrice,
		TotalPrice: quote.TotalPrice,
		Tier:       quote.Tier,
		Locale:     model.NormalizeLocale(locale),
	}

	link, err := c.dispatcher.Dispatch(ctx, intent)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("intent_id", intent.ID.String()).
			Str("product_id", product.ID).
			Msg("dispatch failed")
		return intent, "", err
	}

	c.logger.Debug().
		Str("intent_id", intent.ID.String()).
		Str("tier", string(quote.Tier)).
		Msg("order intent composed")

	return intent, link, nil
}
