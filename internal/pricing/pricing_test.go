package pricing

import (
	"testing"

	"cats-shop/internal/model"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func threeTierSchedule() model.PriceSchedule {
	return model.PriceSchedule{
		Single: 280,
		From8:  ptr(250),
		From80: ptr(200),
	}
}

func twoTierSchedule() model.PriceSchedule {
	return model.PriceSchedule{
		Single: 280,
		From6:  ptr(250),
	}
}

func TestCalculate_ThreeTier(t *testing.T) {
	schedule := threeTierSchedule()

	tests := []struct {
		name          string
		quantity      int
		expectedUnit  int
		expectedTotal int
		expectedTier  Tier
	}{
		{
			name:          "Single unit uses base price",
			quantity:      1,
			expectedUnit:  280,
			expectedTotal: 280,
			expectedTier:  TierNone,
		},
		{
			name:          "Just below medium threshold",
			quantity:      7,
			expectedUnit:  280,
			expectedTotal: 1960,
			expectedTier:  TierNone,
		},
		{
			name:          "Medium threshold",
			quantity:      8,
			expectedUnit:  250,
			expectedTotal: 2000,
			expectedTier:  TierMedium,
		},
		{
			name:          "Just below high threshold",
			quantity:      79,
			expectedUnit:  250,
			expectedTotal: 19750,
			expectedTier:  TierMedium,
		},
		{
			name:          "High threshold",
			quantity:      80,
			expectedUnit:  200,
			expectedTotal: 16000,
			expectedTier:  TierHigh,
		},
		{
			name:          "Far above high threshold",
			quantity:      500,
			expectedUnit:  200,
			expectedTotal: 100000,
			expectedTier:  TierHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := Calculate(schedule, tt.quantity)
			assert.Equal(t, tt.expectedUnit, quote.UnitPrice)
			assert.Equal(t, tt.expectedTotal, quote.TotalPrice)
			assert.Equal(t, tt.expectedTier, quote.Tier)
		})
	}
}

func TestCalculate_TwoTier(t *testing.T) {
	schedule := twoTierSchedule()

	tests := []struct {
		name          string
		quantity      int
		expectedUnit  int
		expectedTotal int
		expectedTier  Tier
	}{
		{
			name:          "Below wholesale threshold",
			quantity:      5,
			expectedUnit:  280,
			expectedTotal: 1400,
			expectedTier:  TierNone,
		},
		{
			name:          "Wholesale threshold",
			quantity:      6,
			expectedUnit:  250,
			expectedTotal: 1500,
			expectedTier:  TierWholesale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := Calculate(schedule, tt.quantity)
			assert.Equal(t, tt.expectedUnit, quote.UnitPrice)
			assert.Equal(t, tt.expectedTotal, quote.TotalPrice)
			assert.Equal(t, tt.expectedTier, quote.Tier)
		})
	}
}

func TestCalculate_Flat(t *testing.T) {
	schedule := model.PriceSchedule{Single: 280}

	quote := Calculate(schedule, 100)
	assert.Equal(t, 280, quote.UnitPrice)
	assert.Equal(t, 28000, quote.TotalPrice)
	assert.Equal(t, TierNone, quote.Tier)
	assert.False(t, quote.Discounted())
}

func TestCalculate_RoundsUnitPriceBeforeMultiplying(t *testing.T) {
	// 249.6 rounds to 250 first; the total is 250*8, not round(249.6*8).
	schedule := model.PriceSchedule{
		Single: 280,
		From8:  ptr(249.6),
	}

	quote := Calculate(schedule, 8)
	assert.Equal(t, 250, quote.UnitPrice)
	assert.Equal(t, 2000, quote.TotalPrice)
}

func TestCalculate_ThreeTierMissingFrom80FallsToMedium(t *testing.T) {
	schedule := model.PriceSchedule{
		Single: 280,
		From8:  ptr(250),
	}

	quote := Calculate(schedule, 120)
	assert.Equal(t, 250, quote.UnitPrice)
	assert.Equal(t, TierMedium, quote.Tier)
}

func TestCalculate_Idempotent(t *testing.T) {
	schedule := threeTierSchedule()

	first := Calculate(schedule, 42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Calculate(schedule, 42))
	}
}

func TestCalculate_BothShapesPresentPrefersThreeTier(t *testing.T) {
	schedule := model.PriceSchedule{
		Single: 280,
		From6:  ptr(260),
		From8:  ptr(250),
	}

	// At 6 units the legacy wholesale tier would apply; the three-tier shape
	// takes precedence, so the base price holds until 8 units.
	quote := Calculate(schedule, 6)
	assert.Equal(t, 280, quote.UnitPrice)
	assert.Equal(t, TierNone, quote.Tier)

	quote = Calculate(schedule, 8)
	assert.Equal(t, 250, quote.UnitPrice)
	assert.Equal(t, TierMedium, quote.Tier)
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name       string
		origin     float64
		discounted float64
		expected   int
	}{
		{name: "Medium tier discount", origin: 280, discounted: 250, expected: 11},
		{name: "High tier discount", origin: 280, discounted: 200, expected: 29},
		{name: "No discount", origin: 280, discounted: 280, expected: 0},
		{name: "Zero origin does not divide", origin: 0, discounted: 0, expected: 0},
		{name: "Zero origin with discounted price", origin: 0, discounted: 100, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DiscountPercent(tt.origin, tt.discounted))
		})
	}
}
