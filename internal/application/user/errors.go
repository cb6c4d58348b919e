package user

import "errors"

var (
	// ErrUserNotFound is returned when the requested user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when a create or update would leave
	// two records with the same email
	ErrEmailAlreadyExists = errors.New("email already exists")
)
