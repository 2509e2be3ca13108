package repository

import (
	"database/sql"
	"fmt"

	"github.com/Dan9191/user-service/internal/models"
	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a unique constraint
// violation. The users table carries a unique index on username, so a
// concurrent insert that slips past the service-level check still
// surfaces as a conflict here.
const uniqueViolation = "23505"

// PostgresRepository provides user persistence backed by PostgreSQL.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository initializes a new Postgres-backed repository.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save inserts a new user and assigns its id.
func (r *PostgresRepository) Save(user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING id`
	err := r.db.QueryRow(query, user.Username, user.Email).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &models.ConflictError{Username: user.Username}
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by id.
func (r *PostgresRepository) FindByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email
		FROM users
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.Username, &user.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return user, nil
}

// FindByUsername retrieves a user by exact username.
func (r *PostgresRepository) FindByUsername(username string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email
		FROM users
		WHERE username = $1`
	err := r.db.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindAll retrieves every stored user.
func (r *PostgresRepository) FindAll() ([]*models.User, error) {
	query := `
		SELECT id, username, email
		FROM users`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Update overwrites the record matched by the user's id.
func (r *PostgresRepository) Update(user *models.User) (*models.User, error) {
	query := `
		UPDATE users
		SET username = $1, email = $2
		WHERE id = $3`
	_, err := r.db.Exec(query, user.Username, user.Email, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &models.ConflictError{Username: user.Username}
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteByID removes a user by id.
func (r *PostgresRepository) DeleteByID(id int64) error {
	query := `
		DELETE FROM users
		WHERE id = $1`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ExistsByID reports whether a user with the given id exists.
func (r *PostgresRepository) ExistsByID(id int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	if err := r.db.QueryRow(query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == uniqueViolation
	}
	return false
}
