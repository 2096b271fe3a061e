package types

import "github.com/shopwave/shopwave-backend/pkg/enums"

// Product is one catalog entry. Products are generated once at startup and
// never mutated afterwards.
type Product struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Price            float64        `json:"price"`
	Description      string         `json:"description"`
	Category         enums.Category `json:"category"`
	Image            string         `json:"image"`
	Stock            int            `json:"stock"`
	ShippingEstimate string         `json:"shipping_estimate"`
	IsSale           bool           `json:"is_sale"`
	SalePrice        *float64       `json:"sale_price,omitempty"`
	Details          map[string]any `json:"details,omitempty"`
	Rating           float64        `json:"rating"`
	Reviews          int            `json:"reviews"`
}

// EffectivePrice is the sale price when the product is on sale, the base
// price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.IsSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
