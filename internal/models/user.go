package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the authentication-bearing account, 1:1 with a Person.
type User struct {
	ID        uuid.UUID `json:"id"`
	PersonID  uuid.UUID `json:"personId"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewUser(personID uuid.UUID) *User {
	return &User{
		ID:        uuid.New(),
		PersonID:  personID,
		CreatedAt: time.Now().UTC(),
	}
}
