package order

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Dispatcher hands a composed intent to the external order channel and
// returns the deep link the customer is sent to. Dispatch is fire-and-forget:
// no retries, no delivery confirmation.
type Dispatcher interface {
	Dispatch(ctx context.Context, intent *Intent) (link string, err error)
}

// TelegramDispatcher targets the shop's Telegram bot via a t.me deep link.
type TelegramDispatcher struct {
	bot    string
	logger zerolog.Logger
}

// NewTelegramDispatcher creates a dispatcher for the given bot username.
func NewTelegramDispatcher(bot string, logger zerolog.Logger) *TelegramDispatcher {
	return &TelegramDispatcher{
		bot:    bot,
		logger: logger.With().Str("component", "telegram-dispatcher").Logger(),
	}
}

// Dispatch builds the bot deep link for the intent. The link is opened on
// the customer's side; the server only records the hand-off.
func (d *TelegramDispatcher) Dispatch(ctx context.Context, intent *Intent) (string, error) {
	if d.bot == "" {
		return "", fmt.Errorf("telegram bot username is not configured")
	}

	link := fmt.Sprintf("https://t.me/%s?start=%s", d.bot, intent.StartToken())

	d.logger.Info().
		Str("intent_id", intent.ID.String()).
		Str("product_id", intent.ProductID).
		Int("quantity", intent.Quantity).
		Int("total_price", intent.TotalPrice).
		Str("locale", string(intent.Locale)).
		Msg("order intent dispatched")

	return link, nil
}
