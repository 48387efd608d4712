package repositories

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/miniactivity/server/internal/models"
)

type SQLiteAccountRepository struct {
	db *sql.DB
}

func NewSQLiteAccountRepository(db *sql.DB) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{
		db: db,
	}
}

// Register creates person, user and credential in a single transaction.
func (r *SQLiteAccountRepository) Register(person *models.Person, user *models.User, credential *models.Credential) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO persons (id, name, email, created_at)
		VALUES (?, ?, ?, ?)
	`
	if _, err := tx.Exec(query, person.ID.String(), person.Name, person.Email, person.CreatedAt); err != nil {
		return err
	}

	query = `
		INSERT INTO users (id, person_id, role, created_at)
		VALUES (?, ?, ?, ?)
	`
	if _, err := tx.Exec(query, user.ID.String(), user.PersonID.String(), user.Role, user.CreatedAt); err != nil {
		return err
	}

	query = `
		INSERT INTO credentials (id, user_id, provider, identifier, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(query,
		credential.ID.String(),
		credential.UserID.String(),
		credential.Provider,
		credential.Identifier,
		credential.PasswordHash,
		credential.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// GetPersonByEmail retrieves a person by email
func (r *SQLiteAccountRepository) GetPersonByEmail(email string) (*models.Person, error) {
	query := `SELECT id, name, email, created_at FROM persons WHERE email = ?`

	var person models.Person
	var personID string
	err := r.db.QueryRow(query, email).Scan(
		&personID,
		&person.Name,
		&person.Email,
		&person.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	person.ID, err = uuid.Parse(personID)
	if err != nil {
		return nil, err
	}

	return &person, nil
}

// GetUserByID retrieves a user by ID
func (r *SQLiteAccountRepository) GetUserByID(id string) (*models.User, error) {
	query := `SELECT id, person_id, role, created_at FROM users WHERE id = ?`

	var user models.User
	var userID, personID string
	err := r.db.QueryRow(query, id).Scan(
		&userID,
		&personID,
		&user.Role,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if user.ID, err = uuid.Parse(userID); err != nil {
		return nil, err
	}
	if user.PersonID, err = uuid.Parse(personID); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetCredential retrieves a credential by provider and identifier
func (r *SQLiteAccountRepository) GetCredential(provider, identifier string) (*models.Credential, error) {
	query := `
		SELECT id, user_id, provider, identifier, password_hash, created_at
		FROM credentials
		WHERE provider = ? AND identifier = ?
	`

	var credential models.Credential
	var credentialID, userID string
	err := r.db.QueryRow(query, provider, identifier).Scan(
		&credentialID,
		&userID,
		&credential.Provider,
		&credential.Identifier,
		&credential.PasswordHash,
		&credential.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if credential.ID, err = uuid.Parse(credentialID); err != nil {
		return nil, err
	}
	if credential.UserID, err = uuid.Parse(userID); err != nil {
		return nil, err
	}

	return &credential, nil
}
