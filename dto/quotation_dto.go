package dto

type AddDraftItemDTO struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateDraftItemDTO struct {
	Quantity int `json:"quantity" binding:"required"`
}

// SubmitQuotationDTO carries the client half of a submission. The percentage
// rates are deliberately unconstrained here; the calculator passes them
// through as given.
type SubmitQuotationDTO struct {
	ClientName      string  `json:"client_name" binding:"required"`
	ClientEmail     string  `json:"client_email" binding:"required,email"`
	ClientPhone     string  `json:"client_phone"`
	ClientCompany   string  `json:"client_company"`
	Notes           string  `json:"notes"`
	DiscountPercent float64 `json:"discount_percent"`
	TaxPercent      float64 `json:"tax_percent"`
}

type UpdateQuotationStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=draft sent accepted rejected"`
}
