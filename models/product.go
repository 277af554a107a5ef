package models

type Product struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Type        string   `json:"type,omitempty"` // "office" or "home"
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Dimensions  string   `json:"dimensions,omitempty"`
	Materials   string   `json:"materials,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	ImageUrl    string   `json:"image_url,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"` // absent means in stock
	Featured    bool     `json:"featured"`
	CreatedDate string   `json:"created_date"`
}

func (p *Product) GetID() string            { return p.Id }
func (p *Product) SetID(id string)          { p.Id = id }
func (p *Product) SetCreatedDate(ts string) { p.CreatedDate = ts }

// Available reports stock status, treating an absent in_stock flag as true.
func (p *Product) Available() bool {
	return p.InStock == nil || *p.InStock
}

func (p *Product) Field(name string) (any, bool) {
	switch name {
	case "id":
		return p.Id, true
	case "name":
		return p.Name, true
	case "category":
		return p.Category, true
	case "type":
		return p.Type, true
	case "price":
		return p.Price, true
	case "description":
		return p.Description, true
	case "dimensions":
		return p.Dimensions, true
	case "materials":
		return p.Materials, true
	case "colors":
		return p.Colors, true
	case "image_url":
		return p.ImageUrl, true
	case "in_stock":
		return p.Available(), true
	case "featured":
		return p.Featured, true
	case "created_date":
		return p.CreatedDate, true
	}
	return nil, false
}
