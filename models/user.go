package models

type Role string

const (
	RoleAdmin Role = "ADMIN"
)

type User struct {
	Id           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"` // never returned by the API
	Role         Role   `json:"role"`
	IsActive     bool   `json:"is_active"`
	CreatedDate  string `json:"created_date"`
}

func (u *User) GetID() string            { return u.Id }
func (u *User) SetID(id string)          { u.Id = id }
func (u *User) SetCreatedDate(ts string) { u.CreatedDate = ts }

func (u *User) Field(name string) (any, bool) {
	switch name {
	case "id":
		return u.Id, true
	case "email":
		return u.Email, true
	case "role":
		return string(u.Role), true
	case "is_active":
		return u.IsActive, true
	case "created_date":
		return u.CreatedDate, true
	}
	return nil, false
}

type RefreshToken struct {
	Id          string  `json:"id"`
	UserId      string  `json:"user_id"`
	TokenHash   string  `json:"token_hash"`
	ExpiresAt   string  `json:"expires_at"`
	RevokedAt   *string `json:"revoked_at,omitempty"`
	ReplacedBy  *string `json:"replaced_by,omitempty"`
	CreatedDate string  `json:"created_date"`
}

func (t *RefreshToken) GetID() string            { return t.Id }
func (t *RefreshToken) SetID(id string)          { t.Id = id }
func (t *RefreshToken) SetCreatedDate(ts string) { t.CreatedDate = ts }

func (t *RefreshToken) Field(name string) (any, bool) {
	switch name {
	case "id":
		return t.Id, true
	case "user_id":
		return t.UserId, true
	case "token_hash":
		return t.TokenHash, true
	case "expires_at":
		return t.ExpiresAt, true
	case "created_date":
		return t.CreatedDate, true
	}
	return nil, false
}
