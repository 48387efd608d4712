package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/miniactivity/server/internal/apperrors"
	"github.com/miniactivity/server/internal/models"
	"github.com/miniactivity/server/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventService() (*EventService, *repositories.MemoryEventRepository, *repositories.MemoryTagRepository) {
	eventRepo := repositories.NewMemoryEventRepository()
	tagRepo := repositories.NewMemoryTagRepository()
	return NewEventService(eventRepo, tagRepo), eventRepo, tagRepo
}

func seedTags(t *testing.T, tagRepo *repositories.MemoryTagRepository, labels ...string) []*models.Tag {
	t.Helper()
	tags := make([]*models.Tag, 0, len(labels))
	for _, label := range labels {
		tag := models.NewTag(label)
		require.NoError(t, tagRepo.Create(tag))
		tags = append(tags, tag)
	}
	return tags
}

func TestCreateEventResolvesTagSubset(t *testing.T) {
	service, eventRepo, tagRepo := newEventService()
	ctx := context.Background()
	creatorID := uuid.New()

	tags := seedTags(t, tagRepo, "Workshop", "Tech")

	event, err := service.CreateEvent(ctx, creatorID, "Test Event", time.Now(),
		[]string{tags[0].ID.String(), uuid.New().String()})
	require.NoError(t, err)

	assert.Equal(t, "Test Event", event.Title)
	assert.Equal(t, creatorID, event.CreatorID)

	// known id resolved, unknown id silently dropped
	require.Len(t, event.Tags, 1)
	assert.Equal(t, tags[0].ID, event.Tags[0].ID)

	assert.Len(t, eventRepo.Events, 1)
}

func TestUpdateEventPartial(t *testing.T) {
	service, _, tagRepo := newEventService()
	ctx := context.Background()
	creatorID := uuid.New()

	tags := seedTags(t, tagRepo, "Workshop", "Tech")
	event, err := service.CreateEvent(ctx, creatorID, "Old Title", time.Now(),
		[]string{tags[0].ID.String(), tags[1].ID.String()})
	require.NoError(t, err)

	title := "New Title"
	updated, err := service.UpdateEvent(ctx, event.ID.String(), &title, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, event.Date.Unix(), updated.Date.Unix())
	// tags untouched when not provided
	assert.Len(t, updated.Tags, 2)
}

func TestUpdateEventReplacesTagSet(t *testing.T) {
	service, _, tagRepo := newEventService()
	ctx := context.Background()

	tags := seedTags(t, tagRepo, "Workshop", "Tech")
	event, err := service.CreateEvent(ctx, uuid.New(), "Event", time.Now(),
		[]string{tags[0].ID.String(), tags[1].ID.String()})
	require.NoError(t, err)

	// full replace, not merge: an empty list clears all tags
	empty := []string{}
	updated, err := service.UpdateEvent(ctx, event.ID.String(), nil, nil, &empty)
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)

	fetched, err := service.GetEvent(ctx, event.ID.String())
	require.NoError(t, err)
	assert.Empty(t, fetched.Tags)
}

func TestUpdateEventNotFound(t *testing.T) {
	service, _, _ := newEventService()

	title := "New Title"
	_, err := service.UpdateEvent(context.Background(), uuid.New().String(), &title, nil, nil)

	var notFoundErr *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestDeleteEvent(t *testing.T) {
	service, eventRepo, _ := newEventService()
	ctx := context.Background()

	event, err := service.CreateEvent(ctx, uuid.New(), "Event", time.Now(), nil)
	require.NoError(t, err)

	require.NoError(t, service.DeleteEvent(ctx, event.ID.String()))
	assert.Empty(t, eventRepo.Events)

	err = service.DeleteEvent(ctx, event.ID.String())
	var notFoundErr *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestGetEventOwner(t *testing.T) {
	service, _, _ := newEventService()
	ctx := context.Background()
	creatorID := uuid.New()

	event, err := service.CreateEvent(ctx, creatorID, "Event", time.Now(), nil)
	require.NoError(t, err)

	ownerID, err := service.GetEventOwner(ctx, event.ID.String())
	require.NoError(t, err)
	assert.Equal(t, creatorID.String(), ownerID)

	_, err = service.GetEventOwner(ctx, uuid.New().String())
	var notFoundErr *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestAddAttendeeDuplicateEmailIsSoftFailure(t *testing.T) {
	service, _, _ := newEventService()
	ctx := context.Background()

	event, err := service.CreateEvent(ctx, uuid.New(), "Event", time.Now(), nil)
	require.NoError(t, err)

	first, err := service.AddAttendee(ctx, event.ID.String(), "Krish", "krish@example.com")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, models.RSVPGoing, first.RSVPStatus)

	// same email again: nil result, no error, count stays at 1
	second, err := service.AddAttendee(ctx, event.ID.String(), "Krish Again", "krish@example.com")
	require.NoError(t, err)
	assert.Nil(t, second)

	fetched, err := service.GetEvent(ctx, event.ID.String())
	require.NoError(t, err)
	assert.Len(t, fetched.Attendees, 1)
}

func TestAddAttendeeAllowsMissingEmail(t *testing.T) {
	service, _, _ := newEventService()
	ctx := context.Background()

	event, err := service.CreateEvent(ctx, uuid.New(), "Event", time.Now(), nil)
	require.NoError(t, err)

	first, err := service.AddAttendee(ctx, event.ID.String(), "Anon", "")
	require.NoError(t, err)
	require.NotNil(t, first)

	// empty emails never collide
	second, err := service.AddAttendee(ctx, event.ID.String(), "Other Anon", "")
	require.NoError(t, err)
	require.NotNil(t, second)
}

func TestAddAttendeeUnknownEvent(t *testing.T) {
	service, _, _ := newEventService()

	_, err := service.AddAttendee(context.Background(), uuid.New().String(), "Krish", "krish@example.com")

	var notFoundErr *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

// deleteOnWriteEventRepo drops the event right before the attendee write,
// reproducing a delete landing between the existence check and the insert.
type deleteOnWriteEventRepo struct {
	*repositories.MemoryEventRepository
}

func (r *deleteOnWriteEventRepo) AddAttendee(eventID string, attendee *models.Attendee) error {
	if _, err := r.Delete(eventID); err != nil {
		return err
	}
	return r.MemoryEventRepository.AddAttendee(eventID, attendee)
}

func TestAddAttendeeEventDeletedConcurrently(t *testing.T) {
	eventRepo := &deleteOnWriteEventRepo{repositories.NewMemoryEventRepository()}
	service := NewEventService(eventRepo, repositories.NewMemoryTagRepository())
	ctx := context.Background()

	event, err := service.CreateEvent(ctx, uuid.New(), "Event", time.Now(), nil)
	require.NoError(t, err)

	attendee, err := service.AddAttendee(ctx, event.ID.String(), "Krish", "krish@example.com")
	assert.Nil(t, attendee)

	var notFoundErr *apperrors.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestRemoveAttendee(t *testing.T) {
	service, _, _ := newEventService()
	ctx := context.Background()

	event, err := service.CreateEvent(ctx, uuid.New(), "Event", time.Now(), nil)
	require.NoError(t, err)

	attendee, err := service.AddAttendee(ctx, event.ID.String(), "Krish", "krish@example.com")
	require.NoError(t, err)

	removed, err := service.RemoveAttendee(ctx, event.ID.String(), attendee.ID.String())
	require.NoError(t, err)
	assert.True(t, removed)

	// removing again is a no-op, not an error
	removed, err = service.RemoveAttendee(ctx, event.ID.String(), attendee.ID.String())
	require.NoError(t, err)
	assert.False(t, removed)

	// unknown event is also a no-op
	removed, err = service.RemoveAttendee(ctx, uuid.New().String(), attendee.ID.String())
	require.NoError(t, err)
	assert.False(t, removed)
}
