package models

import (
	"fmt"
	"time"
)

// Address is a single entry in a user's address book. Full is always
// recomputed from the four component fields, never edited directly.
type Address struct {
	ID      string `json:"id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Full    string `json:"full"`
}

// DeriveFull rebuilds the display string from the component fields.
func (a *Address) DeriveFull() {
	a.Full = fmt.Sprintf("%s, %s, %s - %s", a.Street, a.City, a.State, a.Pincode)
}

// User is a registered account. Admin deactivates accounts instead of
// deleting them.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Addresses    []Address `json:"addresses"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Session is the projection of a user (or the synthetic admin identity)
// that is persisted as the active identity. It never carries a password.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`
	Role      string    `json:"role"`
}

// Project builds the session view of a user.
func (u User) Project() Session {
	addresses := u.Addresses
	if addresses == nil {
		addresses = []Address{}
	}
	return Session{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Addresses: addresses,
		Role:      RoleUser,
	}
}
