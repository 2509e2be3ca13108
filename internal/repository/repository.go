package repository

import "github.com/Dan9191/user-service/internal/models"

// UserRepository defines the contract for user persistence. Lookup
// methods return (nil, nil) when no matching record exists.
type UserRepository interface {
	// Save inserts a new user and assigns its id.
	Save(user *models.User) (*models.User, error)

	// FindByID retrieves a user by id.
	FindByID(id int64) (*models.User, error)

	// FindByUsername retrieves a user by exact username.
	FindByUsername(username string) (*models.User, error)

	// FindAll retrieves every stored user.
	FindAll() ([]*models.User, error)

	// Update overwrites the record matched by the user's id.
	Update(user *models.User) (*models.User, error)

	// DeleteByID removes a user by id.
	DeleteByID(id int64) error

	// ExistsByID reports whether a user with the given id exists.
	ExistsByID(id int64) (bool, error)
}
