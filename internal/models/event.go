package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is the core aggregate. CreatorID is set once at creation and is
// never reassigned; ownership checks anchor on it.
type Event struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Date      time.Time   `json:"date"`
	Tags      []*Tag      `json:"tags"`
	Attendees []*Attendee `json:"attendees"`
	CreatorID uuid.UUID   `json:"creatorId"`
	CreatedAt time.Time   `json:"createdAt"`
}

func NewEvent(title string, date time.Time, creatorID uuid.UUID) *Event {
	return &Event{
		ID:        uuid.New(),
		Title:     title,
		Date:      date,
		Tags:      []*Tag{},
		Attendees: []*Attendee{},
		CreatorID: creatorID,
		CreatedAt: time.Now().UTC(),
	}
}

func (e *Event) Validate() error {
	if e.Title == "" {
		return ErrEventTitleRequired
	}
	if e.Date.IsZero() {
		return ErrEventDateRequired
	}
	return nil
}

// AttendeeByEmail returns the attendee with the given non-empty email,
// or nil when no such attendee exists on this event.
func (e *Event) AttendeeByEmail(email string) *Attendee {
	if email == "" {
		return nil
	}
	for _, a := range e.Attendees {
		if a.Email == email {
			return a
		}
	}
	return nil
}

// Common errors
var (
	ErrEventTitleRequired = &ValidationError{Field: "title", Message: "Title is required"}
	ErrEventDateRequired  = &ValidationError{Field: "date", Message: "Date is required"}
)

// ValidationError is a field-level model validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
