package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/blueshop/storefront/internal/domain"
)

// Orders strictly above the threshold ship free. An empty cart also ships
// free: there is nothing to ship.
var (
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShippingFee       = decimal.RequireFromString("8.00")
)

// ComputeTotals derives subtotal, shipping and total from the given cart
// lines, rounded to two decimal places. It is pure: same lines, same totals.
func ComputeTotals(lines []domain.CartLine) domain.Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		price := decimal.NewFromFloat(l.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	shipping := decimal.Zero
	if !subtotal.IsZero() && subtotal.LessThanOrEqual(freeShippingThreshold) {
		shipping = flatShippingFee
	}

	return domain.Totals{
		Subtotal: subtotal.Round(2).InexactFloat64(),
		Shipping: shipping.Round(2).InexactFloat64(),
		Total:    subtotal.Add(shipping).Round(2).InexactFloat64(),
	}
}
