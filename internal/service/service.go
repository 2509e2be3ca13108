package service

import (
	"strings"

	"github.com/Dan9191/user-service/internal/models"
	"github.com/Dan9191/user-service/internal/repository"
	"github.com/sirupsen/logrus"
)

// Service handles business logic for user management
type Service struct {
	repo repository.UserRepository
	log  *logrus.Logger
}

// NewService initializes a new service
func NewService(repo repository.UserRepository, log *logrus.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// CreateUser validates the candidate, enforces username uniqueness and
// persists the new user. The storage layer assigns the id.
func (s *Service) CreateUser(user *models.User) (*models.User, error) {
	if strings.TrimSpace(user.Username) == "" {
		return nil, &models.ValidationError{Message: "Username cannot be empty"}
	}
	if strings.TrimSpace(user.Email) == "" {
		return nil, &models.ValidationError{Message: "Email cannot be empty"}
	}

	existing, err := s.repo.FindByUsername(user.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &models.ConflictError{Username: user.Username}
	}

	created, err := s.repo.Save(user)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User created: %s (id %d)", created.Username, created.ID)
	return created, nil
}

// GetUserByID returns the user with the given id, or nil if absent.
func (s *Service) GetUserByID(id int64) (*models.User, error) {
	return s.repo.FindByID(id)
}

// GetUserByUsername returns the user with the given username, or nil if absent.
func (s *Service) GetUserByUsername(username string) (*models.User, error) {
	return s.repo.FindByUsername(username)
}

// GetAllUsers returns every stored user.
func (s *Service) GetAllUsers() ([]*models.User, error) {
	return s.repo.FindAll()
}

// UpdateUser merges the patch into the stored user and persists it.
// Blank patch fields leave the stored values unchanged; the id is
// never updated.
func (s *Service) UpdateUser(id int64, patch *models.User) (*models.User, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &models.NotFoundError{ID: id}
	}

	if strings.TrimSpace(patch.Username) != "" {
		sameUsername, err := s.repo.FindByUsername(patch.Username)
		if err != nil {
			return nil, err
		}
		if sameUsername != nil && sameUsername.ID != id {
			return nil, &models.ConflictError{Username: patch.Username}
		}
		existing.Username = patch.Username
	}

	if strings.TrimSpace(patch.Email) != "" {
		existing.Email = patch.Email
	}

	updated, err := s.repo.Update(existing)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User updated: %s (id %d)", updated.Username, updated.ID)
	return updated, nil
}

// DeleteUser removes the user with the given id.
func (s *Service) DeleteUser(id int64) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return &models.NotFoundError{ID: id}
	}

	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}

	s.log.Infof("User deleted: id %d", id)
	return nil
}

// UserExists reports whether a user with the given id exists.
func (s *Service) UserExists(id int64) (bool, error) {
	return s.repo.ExistsByID(id)
}
