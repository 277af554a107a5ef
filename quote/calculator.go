// Package quote holds the quotation draft workflow and the totals math.
package quote

import "github.com/luxefurnish/furnishbackend/models"

// Totals is the price breakdown derived from a line-item list and two
// percentage rates. No rounding is applied here; currency formatting is a
// presentation concern.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxableAmount  float64 `json:"taxable_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	Total          float64 `json:"total"`
}

// CalculateTotals derives the quote totals. The subtotal sums each item's
// stored total rather than recomputing unit_price*quantity, so callers must
// keep that invariant on every quantity change. Percentages are passed
// through unclamped.
func CalculateTotals(items []models.QuoteLineItem, discountPercent, taxPercent float64) Totals {
	var t Totals
	for _, item := range items {
		t.Subtotal += item.Total
	}
	t.DiscountAmount = t.Subtotal * (discountPercent / 100)
	t.TaxableAmount = t.Subtotal - t.DiscountAmount
	t.TaxAmount = t.TaxableAmount * (taxPercent / 100)
	t.Total = t.TaxableAmount + t.TaxAmount
	return t
}
