// Package pricing maps a product's tier table and a requested quantity to a
// unit price, a total price and a discount-tier label. All functions are pure.
package pricing

import (
	"math"

	"cats-shop/internal/model"
)

// Quantity thresholds of the two tier-table shapes.
const (
	twoTierThreshold    = 6
	mediumTierThreshold = 8
	highTierThreshold   = 80
)

// Tier labels which volume-discount threshold currently applies.
type Tier string

const (
	TierNone      Tier = "none"
	TierWholesale Tier = "wholesale"
	TierMedium    Tier = "medium"
	TierHigh      Tier = "high"
)

// Quote is the result of a price calculation. Prices are whole currency
// units (hryvnias), already rounded for display.
type Quote struct {
	UnitPrice  int  `json:"unitPrice"`
	TotalPrice int  `json:"totalPrice"`
	Tier       Tier `json:"discountTier"`
}

// Discounted reports whether any volume discount applies.
func (q Quote) Discounted() bool {
	return q.Tier != TierNone
}

// Calculate resolves the applicable tier for the given quantity and computes
// unit and total prices. The caller must reject quantities below 1 before
// invoking. The unit price is rounded to the nearest whole unit first and the
// total is rounded after multiplication, in that order; the two roundings are
// independent and both observable.
//
// Tiers are resolved highest threshold first so the richest applicable
// discount wins. A three-tier schedule missing from_8 falls back to the
// single price for the medium branch; PriceSchedule.Validate surfaces that
// case as a configuration error at load time.
func Calculate(schedule model.PriceSchedule, quantity int) Quote {
	raw := schedule.Single
	tier := TierNone

	switch schedule.Variant() {
	case model.VariantThreeTier:
		switch {
		case quantity >= highTierThreshold && schedule.From80 != nil:
			raw = *schedule.From80
			tier = TierHigh
		case quantity >= mediumTierThreshold:
			if schedule.From8 != nil {
				raw = *schedule.From8
			}
			tier = TierMedium
		}
	case model.VariantTwoTier:
		if quantity >= twoTierThreshold {
			raw = *schedule.From6
			tier = TierWholesale
		}
	}

	unit := int(math.Round(raw))
	return Quote{
		UnitPrice:  unit,
		TotalPrice: int(math.Round(float64(unit) * float64(quantity))),
		Tier:       tier,
	}
}

// DiscountPercent returns the rounded percentage saved when buying at the
// discounted price instead of the origin price. A zero origin yields 0, not
// a division error.
func DiscountPercent(origin, discounted float64) int {
	if origin == 0 {
		return 0
	}
	return int(math.Round((origin - discounted) / origin * 100))
}
