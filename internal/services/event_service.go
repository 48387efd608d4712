package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/miniactivity/server/internal/apperrors"
	"github.com/miniactivity/server/internal/models"
	"github.com/miniactivity/server/internal/repositories"
	"github.com/miniactivity/server/pkg/logger"
)

type EventService struct {
	eventRepo repositories.EventRepository
	tagRepo   repositories.TagRepository
}

func NewEventService(eventRepo repositories.EventRepository, tagRepo repositories.TagRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		tagRepo:   tagRepo,
	}
}

// CreateEvent creates an event owned by the caller. Unknown tag ids are
// silently dropped.
func (s *EventService) CreateEvent(ctx context.Context, creatorID uuid.UUID, title string, date time.Time, tagIDs []string) (*models.Event, error) {
	log := logger.FromContext(ctx)
	log.Infof("[Event] Attempt create event: %s", title)

	tags, err := s.tagRepo.GetByIDs(tagIDs)
	if err != nil {
		return nil, err
	}

	event := models.NewEvent(title, date, creatorID)
	event.Tags = tags

	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}

	log.Infof("[Event] Created event: %s", event.ID)
	return event, nil
}

// GetEvent retrieves an event by id
func (s *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NewNotFoundError("Event not found")
	}
	return event, nil
}

// ListEvents retrieves all events
func (s *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.List()
}

// GetEventOwner resolves the creator of an event for ownership checks.
// A missing event is a NotFound condition, propagated untouched.
func (s *EventService) GetEventOwner(ctx context.Context, id string) (string, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return "", err
	}
	if event == nil {
		return "", apperrors.NewNotFoundError("Event not found")
	}
	return event.CreatorID.String(), nil
}

// UpdateEvent applies a partial update: only non-nil fields change, and a
// provided tag id list replaces the full tag set.
func (s *EventService) UpdateEvent(ctx context.Context, id string, title *string, date *time.Time, tagIDs *[]string) (*models.Event, error) {
	log := logger.FromContext(ctx)
	log.Infof("[Event] Attempt update event: %s", id)

	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NewNotFoundError("Event not found")
	}

	if title != nil {
		event.Title = *title
	}
	if date != nil {
		event.Date = *date
	}
	if tagIDs != nil {
		tags, err := s.tagRepo.GetByIDs(*tagIDs)
		if err != nil {
			return nil, err
		}
		event.Tags = tags
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	log.Infof("[Event] Updated event: %s", event.ID)
	return event, nil
}

// DeleteEvent removes an event from the store
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)
	log.Infof("[Event] Attempt delete event: %s", id)

	deleted, err := s.eventRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("Event not found")
	}

	log.Infof("[Event] Deleted event: %s", id)
	return nil
}

// AddAttendee adds an attendee to an event. A duplicate non-empty email on
// the same event is a soft failure: the result is nil and nothing is
// written. A missing event is a hard failure.
func (s *EventService) AddAttendee(ctx context.Context, eventID, name, email string) (*models.Attendee, error) {
	log := logger.FromContext(ctx)
	log.Infof("[Event] Adding attendee %q to event %s", name, eventID)

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NewNotFoundError("Event not found")
	}

	attendee := models.NewAttendee(name, email)
	err = s.eventRepo.AddAttendee(eventID, attendee)
	if errors.Is(err, repositories.ErrDuplicateAttendeeEmail) {
		log.Warnf("[Event] Attendee with same email already exists on event %s", eventID)
		return nil, nil
	}
	if errors.Is(err, repositories.ErrEventNotFound) {
		return nil, apperrors.NewNotFoundError("Event not found")
	}
	if err != nil {
		return nil, err
	}

	return attendee, nil
}

// RemoveAttendee removes an attendee, reporting whether one was actually
// removed. A missing event or attendee yields false, not an error.
func (s *EventService) RemoveAttendee(ctx context.Context, eventID, attendeeID string) (bool, error) {
	log := logger.FromContext(ctx)
	log.Infof("[Event] Attempt to remove attendee %s from event %s", attendeeID, eventID)

	return s.eventRepo.RemoveAttendee(eventID, attendeeID)
}
