package models

import "fmt"

// ValidationError indicates malformed input, such as a blank required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError indicates a username uniqueness violation.
type ConflictError struct {
	Username string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Username already exists: %s", e.Username)
}

// NotFoundError indicates that no user exists with the given id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User not found with id: %d", e.ID)
}
