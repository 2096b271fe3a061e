package types

import (
	"time"

	"github.com/shopwave/shopwave-backend/pkg/enums"
)

// Order is the snapshot recorded when checkout completes.
type Order struct {
	ID           string             `json:"id"`
	Items        []CartLine         `json:"items"`
	Subtotal     float64            `json:"subtotal"`
	Tax          float64            `json:"tax"`
	ShippingCost float64            `json:"shipping_cost"`
	Total        float64            `json:"total"`
	ShippingTier enums.ShippingTier `json:"shipping_tier"`
	Date         time.Time          `json:"date"`
}
