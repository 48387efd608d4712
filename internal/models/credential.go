package models

import (
	"time"

	"github.com/google/uuid"
)

// Credential providers. An identifier is unique within a provider:
// one EMAIL credential per email address, one GITHUB credential per login.
const (
	ProviderEmail  = "EMAIL"
	ProviderGitHub = "GITHUB"
)

// Credential links a login identifier to a user account. EMAIL credentials
// carry a bcrypt password hash, GITHUB credentials are OAuth-only and
// carry none.
type Credential struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Provider     string    `json:"provider"`
	Identifier   string    `json:"identifier"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewCredential(userID uuid.UUID, provider, identifier, passwordHash string) *Credential {
	return &Credential{
		ID:           uuid.New(),
		UserID:       userID,
		Provider:     provider,
		Identifier:   identifier,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
