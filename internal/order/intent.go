// Package order composes ephemeral order intents and hands them to an
// external dispatch channel. Intents are created, dispatched and discarded;
// nothing in this package persists.
package order

import (
	"fmt"

	"cats-shop/internal/model"
	"cats-shop/internal/pricing"

	"github.com/google/uuid"
)

// Intent describes what a customer wants to buy. It exists only between
// composition and dispatch.
type Intent struct {
	ID         uuid.UUID    `json:"id"`
	ProductID  string       `json:"productId"`
	IDNumber   int          `json:"idNumber"`
	Quantity   int          `json:"quantity"`
	UnitPrice  int          `json:"unitPrice"`
	TotalPrice int          `json:"totalPrice"`
	Tier       pricing.Tier `json:"discountTier"`
	Locale     model.Locale `json:"locale"`
}

// StartToken encodes the intent as the opaque start parameter understood by
// the shop bot. The concatenation is a bit-exact wire contract: numeric
// product id, quantity, total price and the two-letter locale, joined with
// hyphens between a fixed prefix and suffix.
func (i *Intent) StartToken() string {
	return fmt.Sprintf("cats%d-%d-%d-%sshop", i.IDNumber, i.Quantity, i.TotalPrice, i.Locale)
}
