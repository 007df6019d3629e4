package db

import (
	"database/sql"
	"errors"
	"fmt"

	"dsatutor/models"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByUsername(username string) (*models.User, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(databaseURL string) (*PostgresUserRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresUserRepository{db: db}, nil
}

func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO dsatutor.users (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	row := r.db.QueryRow(query, user.ID, user.Username, user.PasswordHash)

	if err := row.Scan(&user.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM dsatutor.users
		WHERE username = $1`

	user := &models.User{}
	row := r.db.QueryRow(query, username)

	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *PostgresUserRepository) Close() error {
	return r.db.Close()
}
