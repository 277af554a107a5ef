package quote

import (
	"errors"
	"fmt"

	"github.com/luxefurnish/furnishbackend/models"
)

var (
	// ErrDuplicateLine is signaled when a product is already on the draft.
	ErrDuplicateLine = errors.New("product already added to draft")
	// ErrQuantityTooLow rejects quantities below 1.
	ErrQuantityTooLow = errors.New("quantity must be at least 1")
	// ErrLineNotFound is returned for operations on a missing line.
	ErrLineNotFound = errors.New("line item not found")
)

// Draft is an in-progress quotation: the line items a client is assembling
// before submission. It is persisted under a scratch key so a half-built
// quote survives a restart.
type Draft struct {
	Id    string                 `json:"id"`
	Items []models.QuoteLineItem `json:"items"`
}

// AddLine appends a line for the product with the given quantity. A product
// already on the draft is rejected, not merged; callers that want a bigger
// quantity adjust the existing line instead.
func (d *Draft) AddLine(p models.Product, quantity int) error {
	if quantity < 1 {
		return ErrQuantityTooLow
	}
	for _, item := range d.Items {
		if item.ProductId == p.Id {
			return fmt.Errorf("product %q: %w", p.Id, ErrDuplicateLine)
		}
	}
	d.Items = append(d.Items, models.QuoteLineItem{
		ProductId:   p.Id,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.Price,
		Total:       p.Price * float64(quantity),
	})
	return nil
}

// UpdateQuantity sets the quantity of an existing line and recomputes its
// total. Quantities below 1 are rejected and leave the line untouched.
func (d *Draft) UpdateQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return ErrQuantityTooLow
	}
	for i := range d.Items {
		if d.Items[i].ProductId == productID {
			d.Items[i].Quantity = quantity
			d.Items[i].Total = d.Items[i].UnitPrice * float64(quantity)
			return nil
		}
	}
	return fmt.Errorf("product %q: %w", productID, ErrLineNotFound)
}

// RemoveLine deletes the line for the product unconditionally. Removing an
// absent line is a no-op.
func (d *Draft) RemoveLine(productID string) {
	kept := d.Items[:0:0]
	for _, item := range d.Items {
		if item.ProductId != productID {
			kept = append(kept, item)
		}
	}
	d.Items = kept
}

// Totals derives the current price breakdown for display.
func (d *Draft) Totals(discountPercent, taxPercent float64) Totals {
	return CalculateTotals(d.Items, discountPercent, taxPercent)
}
