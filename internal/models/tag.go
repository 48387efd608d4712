package models

import "github.com/google/uuid"

// Tag is a global label shared across events. Labels are unique
// case-insensitively; tags are never deleted.
type Tag struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

func NewTag(label string) *Tag {
	return &Tag{
		ID:    uuid.New(),
		Label: label,
	}
}
