package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserEqualByID(t *testing.T) {
	a := &User{ID: 1, Username: "alice", Email: "a@x.com"}
	b := &User{ID: 1, Username: "renamed", Email: "other@x.com"}
	c := &User{ID: 2, Username: "alice", Email: "a@x.com"}

	assert.True(t, a.Equal(b), "same id means same user regardless of other fields")
	assert.False(t, a.Equal(c))
}

func TestUserEqualUnsetID(t *testing.T) {
	a := &User{Username: "alice", Email: "a@x.com"}
	b := &User{Username: "alice", Email: "a@x.com"}

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b), "two unsaved users are distinct")
	assert.False(t, a.Equal(nil))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Username cannot be empty", (&ValidationError{Message: "Username cannot be empty"}).Error())
	assert.Equal(t, "Username already exists: alice", (&ConflictError{Username: "alice"}).Error())
	assert.Equal(t, "User not found with id: 42", (&NotFoundError{ID: 42}).Error())
}
