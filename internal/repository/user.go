package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/D1Massacre007/York-Realty/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	Create(user *model.User) error
	ByID(id string) (*model.User, error)
	ByEmail(email string) (*model.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and relies on the storage-layer unique constraint
// for email. There is deliberately no prior existence check: a SELECT before
// INSERT would race with concurrent registrations.
func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (id, full_name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, user.ID, user.FullName, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

// ByEmail returns the most recently inserted row for the address. The unique
// constraint prevents new collisions, but pre-existing duplicates resolve to
// the newest row.
func (r *userRepository) ByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE email = $1 ORDER BY created_at DESC LIMIT 1`

	err := r.db.Get(user, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

// isUniqueViolation recognizes unique-constraint failures for both SQLite and
// PostgreSQL so callers never match on driver-specific codes.
func isUniqueViolation(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "duplicate key value")
}
