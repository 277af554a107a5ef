package dto

// CreateProductDTO is parsed from the "data" multipart field (JSON); the
// photo travels as a separate file part.
type CreateProductDTO struct {
	Name        string   `json:"name" binding:"required,min=3"`
	Category    string   `json:"category"`
	Type        string   `json:"type" binding:"omitempty,oneof=office home"`
	Price       float64  `json:"price" binding:"gte=0"`
	Description string   `json:"description"`
	Dimensions  string   `json:"dimensions"`
	Materials   string   `json:"materials"`
	Colors      []string `json:"colors"`
	ImageUrl    string   `json:"image_url"`
	InStock     *bool    `json:"in_stock"`
	Featured    bool     `json:"featured"`
}

// UpdateProductDTO — all fields are optional pointers; only set fields are
// merged into the stored record.
type UpdateProductDTO struct {
	Name        *string   `json:"name,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Type        *string   `json:"type,omitempty" binding:"omitempty,oneof=office home"`
	Price       *float64  `json:"price,omitempty" binding:"omitempty,gte=0"`
	Description *string   `json:"description,omitempty"`
	Dimensions  *string   `json:"dimensions,omitempty"`
	Materials   *string   `json:"materials,omitempty"`
	Colors      *[]string `json:"colors,omitempty"`
	ImageUrl    *string   `json:"image_url,omitempty"`
	InStock     *bool     `json:"in_stock,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
}
