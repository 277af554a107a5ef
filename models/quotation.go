package models

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// QuoteLineItem is one product line inside a quotation. ProductName and
// UnitPrice are snapshots taken when the line was added; later product edits
// do not touch them. Total must always equal UnitPrice * Quantity.
type QuoteLineItem struct {
	ProductId   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type Quotation struct {
	Id              string          `json:"id"`
	QuotationNumber string          `json:"quotation_number"`
	ClientName      string          `json:"client_name"`
	ClientEmail     string          `json:"client_email"`
	ClientPhone     string          `json:"client_phone,omitempty"`
	ClientCompany   string          `json:"client_company,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Items           []QuoteLineItem `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	DiscountPercent float64         `json:"discount_percent"`
	TaxPercent      float64         `json:"tax_percent"`
	Total           float64         `json:"total"`
	ValidUntil      string          `json:"valid_until"`
	Status          QuotationStatus `json:"status"`
	CreatedDate     string          `json:"created_date"`
}

func (q *Quotation) GetID() string            { return q.Id }
func (q *Quotation) SetID(id string)          { q.Id = id }
func (q *Quotation) SetCreatedDate(ts string) { q.CreatedDate = ts }

func (q *Quotation) Field(name string) (any, bool) {
	switch name {
	case "id":
		return q.Id, true
	case "quotation_number":
		return q.QuotationNumber, true
	case "client_name":
		return q.ClientName, true
	case "client_email":
		return q.ClientEmail, true
	case "client_phone":
		return q.ClientPhone, true
	case "client_company":
		return q.ClientCompany, true
	case "subtotal":
		return q.Subtotal, true
	case "discount_percent":
		return q.DiscountPercent, true
	case "tax_percent":
		return q.TaxPercent, true
	case "total":
		return q.Total, true
	case "valid_until":
		return q.ValidUntil, true
	case "status":
		return string(q.Status), true
	case "created_date":
		return q.CreatedDate, true
	}
	return nil, false
}
