package types

// CartLine is a product snapshot plus the quantity in the cart. Line identity
// is the product id; the cart holds at most one line per product.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is the effective price times quantity, unrounded.
func (l CartLine) LineTotal() float64 {
	return l.EffectivePrice() * float64(l.Quantity)
}
