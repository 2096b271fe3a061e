package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to two decimal places for display.
// Internal computations stay in float64 end to end; rounding only happens at
// the presentation boundary so repeated additions never compound rounding
// error.
func Round2(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return rounded
}

// Format renders the amount as a fixed two-decimal string, e.g. "228.00".
func Format(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}
