package repository

import (
	"sync"

	"github.com/Dan9191/user-service/internal/models"
)

// MemoryRepository is an in-memory UserRepository. It is safe for
// concurrent use and assigns ids from a monotonically increasing
// counter, mirroring the Postgres store's behavior.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  map[int64]*models.User
	nextID int64
}

// NewMemoryRepository initializes an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[int64]*models.User), nextID: 1}
}

func (r *MemoryRepository) Save(user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = &stored

	saved := stored
	return &saved, nil
}

func (r *MemoryRepository) FindByID(id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	found := *user
	return &found, nil
}

func (r *MemoryRepository) FindByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindAll() ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		found := *user
		users = append(users, &found)
	}
	return users, nil
}

func (r *MemoryRepository) Update(user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	r.users[stored.ID] = &stored

	updated := stored
	return &updated, nil
}

func (r *MemoryRepository) DeleteByID(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}

func (r *MemoryRepository) ExistsByID(id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[id]
	return ok, nil
}
