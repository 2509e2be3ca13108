package models

// User represents a user in the system. ID is assigned by the storage
// layer on creation and is zero before that.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Equal reports whether two users are the same entity. Identity is the
// id alone; two users without an assigned id are never equal.
func (u *User) Equal(other *User) bool {
	if u == other {
		return true
	}
	if u == nil || other == nil {
		return false
	}
	if u.ID == 0 || other.ID == 0 {
		return false
	}
	return u.ID == other.ID
}
