package models

import "github.com/google/uuid"

// RSVP statuses. New attendees start as GOING.
const (
	RSVPGoing    = "GOING"
	RSVPMaybe    = "MAYBE"
	RSVPDeclined = "DECLINED"
)

// Attendee belongs to exactly one event and has no identity outside it.
type Attendee struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	RSVPStatus string    `json:"rsvpStatus"`
}

func NewAttendee(name, email string) *Attendee {
	return &Attendee{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		RSVPStatus: RSVPGoing,
	}
}
