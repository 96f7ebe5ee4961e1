package entity

import "github.com/gofrs/uuid/v5"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type User struct {
	ID          uuid.UUID `json:"id"`
	LastName    string    `json:"lastName"`
	FirstName   string    `json:"firstName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	IsBlocked   bool      `json:"isBlocked"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
