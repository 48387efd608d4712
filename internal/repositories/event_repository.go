package repositories

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"github.com/miniactivity/server/internal/models"
)

type SQLiteEventRepository struct {
	db *sql.DB
}

func NewSQLiteEventRepository(db *sql.DB) *SQLiteEventRepository {
	return &SQLiteEventRepository{
		db: db,
	}
}

// Create creates a new event with its tag references
func (r *SQLiteEventRepository) Create(event *models.Event) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (id, title, date, creator_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(query,
		event.ID.String(),
		event.Title,
		event.Date,
		event.CreatorID.String(),
		event.CreatedAt,
	); err != nil {
		return err
	}

	for _, tag := range event.Tags {
		if _, err := tx.Exec(`INSERT INTO event_tags (event_id, tag_id) VALUES (?, ?)`,
			event.ID.String(), tag.ID.String()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves an event with its tags and attendees
func (r *SQLiteEventRepository) GetByID(id string) (*models.Event, error) {
	query := `SELECT id, title, date, creator_id, created_at FROM events WHERE id = ?`

	var event models.Event
	var eventID, creatorID string
	err := r.db.QueryRow(query, id).Scan(
		&eventID,
		&event.Title,
		&event.Date,
		&creatorID,
		&event.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if event.ID, err = uuid.Parse(eventID); err != nil {
		return nil, err
	}
	if event.CreatorID, err = uuid.Parse(creatorID); err != nil {
		return nil, err
	}

	if event.Tags, err = r.tagsForEvent(id); err != nil {
		return nil, err
	}
	if event.Attendees, err = r.attendeesForEvent(id); err != nil {
		return nil, err
	}

	return &event, nil
}

// List retrieves all events with their tags and attendees
func (r *SQLiteEventRepository) List() ([]*models.Event, error) {
	query := `SELECT id FROM events ORDER BY date ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	events := make([]*models.Event, 0, len(ids))
	for _, id := range ids {
		event, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		if event != nil {
			events = append(events, event)
		}
	}

	return events, nil
}

// Update updates an event's title and date and replaces its tag set
func (r *SQLiteEventRepository) Update(event *models.Event) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE events SET title = ?, date = ? WHERE id = ?`
	if _, err := tx.Exec(query, event.Title, event.Date, event.ID.String()); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM event_tags WHERE event_id = ?`, event.ID.String()); err != nil {
		return err
	}
	for _, tag := range event.Tags {
		if _, err := tx.Exec(`INSERT INTO event_tags (event_id, tag_id) VALUES (?, ?)`,
			event.ID.String(), tag.ID.String()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes an event, reporting whether a row was actually deleted
func (r *SQLiteEventRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AddAttendee appends an attendee to an event. The partial unique index on
// (event_id, email) makes the duplicate-email check atomic even under
// concurrent writers.
func (r *SQLiteEventRepository) AddAttendee(eventID string, attendee *models.Attendee) error {
	query := `
		INSERT INTO attendees (id, event_id, name, email, rsvp_status)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		attendee.ID.String(),
		eventID,
		attendee.Name,
		attendee.Email,
		attendee.RSVPStatus,
	)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique:
			return ErrDuplicateAttendeeEmail
		case sqlite3.ErrConstraintForeignKey:
			// the event row vanished between lookup and insert
			return ErrEventNotFound
		}
	}
	return err
}

// RemoveAttendee removes an attendee, reporting whether a row was deleted
func (r *SQLiteEventRepository) RemoveAttendee(eventID, attendeeID string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM attendees WHERE event_id = ? AND id = ?`, eventID, attendeeID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SQLiteEventRepository) tagsForEvent(eventID string) ([]*models.Tag, error) {
	query := `
		SELECT t.id, t.label
		FROM tags t
		JOIN event_tags et ON et.tag_id = t.id
		WHERE et.event_id = ?
	`

	rows, err := r.db.Query(query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []*models.Tag{}
	for rows.Next() {
		var tag models.Tag
		var tagID string
		if err := rows.Scan(&tagID, &tag.Label); err != nil {
			return nil, err
		}
		if tag.ID, err = uuid.Parse(tagID); err != nil {
			return nil, err
		}
		tags = append(tags, &tag)
	}

	return tags, rows.Err()
}

func (r *SQLiteEventRepository) attendeesForEvent(eventID string) ([]*models.Attendee, error) {
	query := `SELECT id, name, email, rsvp_status FROM attendees WHERE event_id = ?`

	rows, err := r.db.Query(query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := []*models.Attendee{}
	for rows.Next() {
		var attendee models.Attendee
		var attendeeID string
		if err := rows.Scan(&attendeeID, &attendee.Name, &attendee.Email, &attendee.RSVPStatus); err != nil {
			return nil, err
		}
		if attendee.ID, err = uuid.Parse(attendeeID); err != nil {
			return nil, err
		}
		attendees = append(attendees, &attendee)
	}

	return attendees, rows.Err()
}
