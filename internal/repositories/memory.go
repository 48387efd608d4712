package repositories

import (
	"errors"
	"strings"
	"sync"

	"github.com/miniactivity/server/internal/models"
)

// ErrDuplicateAttendeeEmail is returned by AddAttendee when the event
// already has an attendee with the same non-empty email. The check and the
// append happen under the same lock (or unique index), so two concurrent
// adds cannot both pass.
var ErrDuplicateAttendeeEmail = errors.New("attendee email already exists for event")

// ErrEventNotFound is returned by AddAttendee when the event row is gone,
// which can happen when a delete lands between the caller's existence check
// and the write.
var ErrEventNotFound = errors.New("event does not exist")

// In-memory repositories backing the same contracts as the SQLite ones.
// Used by tests and usable as a throwaway store; a single mutex per
// repository serializes writers.

type MemoryAccountRepository struct {
	mu          sync.RWMutex
	Persons     []*models.Person
	Users       []*models.User
	Credentials []*models.Credential
}

func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{}
}

func (r *MemoryAccountRepository) Register(person *models.Person, user *models.User, credential *models.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Persons = append(r.Persons, person)
	r.Users = append(r.Users, user)
	r.Credentials = append(r.Credentials, credential)
	return nil
}

func (r *MemoryAccountRepository) GetPersonByEmail(email string) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.Persons {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *MemoryAccountRepository) GetUserByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.Users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *MemoryAccountRepository) GetCredential(provider, identifier string) (*models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.Credentials {
		if c.Provider == provider && c.Identifier == identifier {
			return c, nil
		}
	}
	return nil, nil
}

type MemoryEventRepository struct {
	mu     sync.RWMutex
	Events []*models.Event
}

func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{}
}

func (r *MemoryEventRepository) Create(event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Events = append(r.Events, copyEvent(event))
	return nil
}

func (r *MemoryEventRepository) GetByID(id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if event := r.find(id); event != nil {
		return copyEvent(event), nil
	}
	return nil, nil
}

func (r *MemoryEventRepository) List() ([]*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*models.Event, 0, len(r.Events))
	for _, event := range r.Events {
		events = append(events, copyEvent(event))
	}
	return events, nil
}

func (r *MemoryEventRepository) Update(event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.Events {
		if existing.ID == event.ID {
			updated := copyEvent(event)
			// attendees are managed through Add/RemoveAttendee only
			updated.Attendees = existing.Attendees
			r.Events[i] = updated
			return nil
		}
	}
	return nil
}

func (r *MemoryEventRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, event := range r.Events {
		if event.ID.String() == id {
			r.Events = append(r.Events[:i], r.Events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryEventRepository) AddAttendee(eventID string, attendee *models.Attendee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event := r.find(eventID)
	if event == nil {
		return ErrEventNotFound
	}
	if attendee.Email != "" && event.AttendeeByEmail(attendee.Email) != nil {
		return ErrDuplicateAttendeeEmail
	}

	event.Attendees = append(event.Attendees, attendee)
	return nil
}

func (r *MemoryEventRepository) RemoveAttendee(eventID, attendeeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event := r.find(eventID)
	if event == nil {
		return false, nil
	}

	for i, attendee := range event.Attendees {
		if attendee.ID.String() == attendeeID {
			event.Attendees = append(event.Attendees[:i], event.Attendees[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryEventRepository) find(id string) *models.Event {
	for _, event := range r.Events {
		if event.ID.String() == id {
			return event
		}
	}
	return nil
}

func copyEvent(event *models.Event) *models.Event {
	copied := *event
	copied.Tags = append([]*models.Tag{}, event.Tags...)
	copied.Attendees = append([]*models.Attendee{}, event.Attendees...)
	return &copied
}

type MemoryTagRepository struct {
	mu   sync.RWMutex
	Tags []*models.Tag
}

func NewMemoryTagRepository() *MemoryTagRepository {
	return &MemoryTagRepository{}
}

func (r *MemoryTagRepository) Create(tag *models.Tag) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Tags = append(r.Tags, tag)
	return nil
}

func (r *MemoryTagRepository) GetByLabel(label string) (*models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tag := range r.Tags {
		if strings.EqualFold(tag.Label, label) {
			return tag, nil
		}
	}
	return nil, nil
}

func (r *MemoryTagRepository) GetByIDs(ids []string) ([]*models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	tags := []*models.Tag{}
	for _, tag := range r.Tags {
		if wanted[tag.ID.String()] {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (r *MemoryTagRepository) List() ([]*models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*models.Tag{}, r.Tags...), nil
}

func (r *MemoryTagRepository) Search(query string) ([]*models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	tags := []*models.Tag{}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag.Label), query) {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}
