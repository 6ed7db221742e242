package model

import "fmt"

// ScheduleVariant identifies which tier-table shape a product carries.
// Two shapes coexist in historical product files: the legacy two-tier form
// with a single wholesale threshold at 6 units, and the current three-tier
// form with thresholds at 8 and 80 units.
type ScheduleVariant int

const (
	// VariantFlat has no volume discount at all.
	VariantFlat ScheduleVariant = iota
	// VariantTwoTier has a wholesale price from 6 units.
	VariantTwoTier
	// VariantThreeTier has discounted prices from 8 and 80 units.
	VariantThreeTier
)

// String returns the variant name.
func (v ScheduleVariant) String() string {
	switch v {
	case VariantTwoTier:
		return "two-tier"
	case VariantThreeTier:
		return "three-tier"
	default:
		return "flat"
	}
}

// PriceSchedule is the tier table of a product. Optional tiers are pointers
// so both historical JSON shapes round-trip unchanged.
type PriceSchedule struct {
	Single float64  `json:"single"`
	From6  *float64 `json:"from_6,omitempty"`
	From8  *float64 `json:"from_8,omitempty"`
	From80 *float64 `json:"from_80,omitempty"`
}

// Variant reports which tier-table shape applies. When a product carries
// both legacy and current tier fields, the richer three-tier form wins.
func (s PriceSchedule) Variant() ScheduleVariant {
	if s.From8 != nil {
		return VariantThreeTier
	}
	if s.From6 != nil {
		return VariantTwoTier
	}
	return VariantFlat
}

// Validate checks the schedule for configuration errors and returns
// non-fatal warnings for data that is accepted as-is. Tier prices are
// expected to be non-increasing as the quantity threshold rises; violations
// are a documented data risk, reported but never corrected silently.
func (s PriceSchedule) Validate() (warnings []string, err error) {
	if s.Single < 0 {
		return nil, fmt.Errorf("%w: single price is negative", ErrConfiguration)
	}
	for name, tier := range map[string]*float64{"from_6": s.From6, "from_8": s.From8, "from_80": s.From80} {
		if tier != nil && *tier < 0 {
			return nil, fmt.Errorf("%w: %s price is negative", ErrConfiguration, name)
		}
	}
	if s.From80 != nil && s.From8 == nil {
		return nil, fmt.Errorf("%w: from_80 is set but from_8 is missing", ErrConfiguration)
	}

	if s.From6 != nil && *s.From6 > s.Single {
		warnings = append(warnings, "from_6 price exceeds single price")
	}
	if s.From8 != nil && *s.From8 > s.Single {
		warnings = append(warnings, "from_8 price exceeds single price")
	}
	if s.From80 != nil && s.From8 != nil && *s.From80 > *s.From8 {
		warnings = append(warnings, "from_80 price exceeds from_8 price")
	}
	if s.From6 != nil && s.From8 != nil {
		warnings = append(warnings, "both from_6 and from_8 are set; three-tier shape takes precedence")
	}
	return warnings, nil
}
