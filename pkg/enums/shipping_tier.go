package enums

import "fmt"

// ShippingTier names one of the fixed shipping options offered at checkout.
type ShippingTier string

const (
	ShippingTierFree     ShippingTier = "free"
	ShippingTierStandard ShippingTier = "standard"
	ShippingTierExpress  ShippingTier = "express"
)

var validShippingTiers = []ShippingTier{
	ShippingTierFree,
	ShippingTierStandard,
	ShippingTierExpress,
}

// ShippingTiers returns the fixed tier list, cheapest first.
func ShippingTiers() []ShippingTier {
	out := make([]ShippingTier, len(validShippingTiers))
	copy(out, validShippingTiers)
	return out
}

// String implements fmt.Stringer.
func (s ShippingTier) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ShippingTier.
func (s ShippingTier) IsValid() bool {
	for _, candidate := range validShippingTiers {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseShippingTier converts raw input into a ShippingTier.
func ParseShippingTier(value string) (ShippingTier, error) {
	for _, candidate := range validShippingTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid shipping tier %q", value)
}
