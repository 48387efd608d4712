package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/miniactivity/server/internal/models"
)

type SQLiteTagRepository struct {
	db *sql.DB
}

func NewSQLiteTagRepository(db *sql.DB) *SQLiteTagRepository {
	return &SQLiteTagRepository{
		db: db,
	}
}

// Create creates a new tag
func (r *SQLiteTagRepository) Create(tag *models.Tag) error {
	query := `INSERT INTO tags (id, label) VALUES (?, ?)`

	_, err := r.db.Exec(query, tag.ID.String(), tag.Label)
	return err
}

// GetByLabel retrieves a tag by label, case-insensitively
func (r *SQLiteTagRepository) GetByLabel(label string) (*models.Tag, error) {
	query := `SELECT id, label FROM tags WHERE LOWER(label) = LOWER(?)`

	var tag models.Tag
	var tagID string
	err := r.db.QueryRow(query, label).Scan(&tagID, &tag.Label)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if tag.ID, err = uuid.Parse(tagID); err != nil {
		return nil, err
	}

	return &tag, nil
}

// GetByIDs resolves the given ids against existing tags. Unknown ids are
// silently dropped.
func (r *SQLiteTagRepository) GetByIDs(ids []string) ([]*models.Tag, error) {
	tags := []*models.Tag{}
	if len(ids) == 0 {
		return tags, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	query := `SELECT id, label FROM tags WHERE id IN (` + placeholders + `)`

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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

// List retrieves all tags
func (r *SQLiteTagRepository) List() ([]*models.Tag, error) {
	return r.queryTags(`SELECT id, label FROM tags ORDER BY label ASC`)
}

// Search retrieves tags whose label contains the query, case-insensitively
func (r *SQLiteTagRepository) Search(query string) ([]*models.Tag, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return r.queryTags(`SELECT id, label FROM tags WHERE LOWER(label) LIKE ? ORDER BY label ASC`, pattern)
}

func (r *SQLiteTagRepository) queryTags(query string, args ...interface{}) ([]*models.Tag, error) {
	rows, err := r.db.Query(query, args...)
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
