package repository

import (
	"testing"

	"github.com/Dan9191/user-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositorySaveAssignsIDs(t *testing.T) {
	repo := NewMemoryRepository()

	first, err := repo.Save(&models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	second, err := repo.Save(&models.User{Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryRepositoryFind(t *testing.T) {
	repo := NewMemoryRepository()

	saved, err := repo.Save(&models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	byID, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice", byID.Username)

	byUsername, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, byUsername)
	assert.Equal(t, saved.ID, byUsername.ID)

	absent, err := repo.FindByID(99)
	require.NoError(t, err)
	assert.Nil(t, absent)

	absent, err = repo.FindByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()

	saved, err := repo.Save(&models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	// Mutating a returned record must not affect the stored one.
	saved.Username = "mallory"

	stored, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Username)
}

func TestMemoryRepositoryUpdate(t *testing.T) {
	repo := NewMemoryRepository()

	saved, err := repo.Save(&models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	saved.Email = "new@x.com"
	updated, err := repo.Update(saved)
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", updated.Email)

	stored, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", stored.Email)
}

func TestMemoryRepositoryDeleteAndExists(t *testing.T) {
	repo := NewMemoryRepository()

	saved, err := repo.Save(&models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	exists, err := repo.ExistsByID(saved.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.DeleteByID(saved.ID))

	exists, err = repo.ExistsByID(saved.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting an absent id is a storage-level no-op.
	assert.NoError(t, repo.DeleteByID(99))
}

func TestMemoryRepositoryFindAll(t *testing.T) {
	repo := NewMemoryRepository()

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.Save(&models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	_, err = repo.Save(&models.User{Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)

	all, err = repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
