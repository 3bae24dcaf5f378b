package entity

import (
	"github.com/gofrs/uuid/v5"
)

type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      string
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
