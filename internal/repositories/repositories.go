package repositories

import "github.com/miniactivity/server/internal/models"

// Repository contracts. Lookups return (nil, nil) when the record is
// absent; only infrastructure failures surface as errors. Services decide
// whether a missing record is a NotFound condition.

// AccountRepository stores persons, users and credentials. Register writes
// all three atomically: no partial account is ever observable.
type AccountRepository interface {
	Register(person *models.Person, user *models.User, credential *models.Credential) error
	GetPersonByEmail(email string) (*models.Person, error)
	GetUserByID(id string) (*models.User, error)
	GetCredential(provider, identifier string) (*models.Credential, error)
}

// EventRepository stores events together with their embedded attendees
// and tag references. AddAttendee reports ErrDuplicateAttendeeEmail on a
// second non-empty email within one event, and ErrEventNotFound when the
// event row is absent at write time.
type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id string) (*models.Event, error)
	List() ([]*models.Event, error)
	Update(event *models.Event) error
	Delete(id string) (bool, error)
	AddAttendee(eventID string, attendee *models.Attendee) error
	RemoveAttendee(eventID, attendeeID string) (bool, error)
}

// TagRepository stores the global tag set.
type TagRepository interface {
	Create(tag *models.Tag) error
	GetByLabel(label string) (*models.Tag, error)
	GetByIDs(ids []string) ([]*models.Tag, error)
	List() ([]*models.Tag, error)
	Search(query string) ([]*models.Tag, error)
}
