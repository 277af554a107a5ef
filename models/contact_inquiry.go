package models

type ContactInquiryStatus string

const (
	ContactInquiryStatusNew ContactInquiryStatus = "new"
)

type ContactInquiry struct {
	Id          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone,omitempty"`
	Company     string               `json:"company,omitempty"`
	Subject     string               `json:"subject,omitempty"`
	Message     string               `json:"message"`
	Status      ContactInquiryStatus `json:"status"`
	CreatedDate string               `json:"created_date"`
}

func (i *ContactInquiry) GetID() string            { return i.Id }
func (i *ContactInquiry) SetID(id string)          { i.Id = id }
func (i *ContactInquiry) SetCreatedDate(ts string) { i.CreatedDate = ts }

func (i *ContactInquiry) Field(name string) (any, bool) {
	switch name {
	case "id":
		return i.Id, true
	case "name":
		return i.Name, true
	case "email":
		return i.Email, true
	case "phone":
		return i.Phone, true
	case "company":
		return i.Company, true
	case "subject":
		return i.Subject, true
	case "message":
		return i.Message, true
	case "status":
		return string(i.Status), true
	case "created_date":
		return i.CreatedDate, true
	}
	return nil, false
}
