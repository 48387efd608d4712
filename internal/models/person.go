package models

import (
	"time"

	"github.com/google/uuid"
)

// Person is the identity profile behind a user account. It is created
// during registration and never changes afterwards.
type Person struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewPerson(name, email string) *Person {
	return &Person{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}
