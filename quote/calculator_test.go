package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luxefurnish/furnishbackend/models"
)

func TestCalculateTotals(t *testing.T) {
	items := []models.QuoteLineItem{
		{ProductId: "1", Quantity: 2, UnitPrice: 250, Total: 500},
		{ProductId: "2", Quantity: 1, UnitPrice: 500, Total: 500},
	}

	got := CalculateTotals(items, 10, 15)

	assert.Equal(t, 1000.0, got.Subtotal)
	assert.Equal(t, 100.0, got.DiscountAmount)
	assert.Equal(t, 900.0, got.TaxableAmount)
	assert.Equal(t, 135.0, got.TaxAmount)
	assert.Equal(t, 1035.0, got.Total)
}

func TestCalculateTotalsZeroRates(t *testing.T) {
	items := []models.QuoteLineItem{
		{ProductId: "1", Quantity: 3, UnitPrice: 400, Total: 1200},
	}

	got := CalculateTotals(items, 0, 0)

	assert.Equal(t, 1200.0, got.Subtotal)
	assert.Zero(t, got.DiscountAmount)
	assert.Zero(t, got.TaxAmount)
	assert.Equal(t, got.Subtotal, got.Total)
}

func TestCalculateTotalsEmptyItems(t *testing.T) {
	got := CalculateTotals(nil, 10, 15)

	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.Total)
}

func TestCalculateTotalsSumsStoredLineTotals(t *testing.T) {
	// The stored total wins even when it disagrees with unit_price*quantity.
	items := []models.QuoteLineItem{
		{ProductId: "1", Quantity: 2, UnitPrice: 100, Total: 150},
	}

	got := CalculateTotals(items, 0, 0)

	assert.Equal(t, 150.0, got.Subtotal)
}

func TestCalculateTotalsPassesRatesThroughUnclamped(t *testing.T) {
	items := []models.QuoteLineItem{
		{ProductId: "1", Quantity: 1, UnitPrice: 1000, Total: 1000},
	}

	got := CalculateTotals(items, -10, 200)

	assert.Equal(t, -100.0, got.DiscountAmount)
	assert.Equal(t, 1100.0, got.TaxableAmount)
	assert.Equal(t, 2200.0, got.TaxAmount)
	assert.Equal(t, 3300.0, got.Total)
}
