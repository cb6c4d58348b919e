package user

import "github.com/lllypuk/userdeck/internal/domain/user"

// Command is the base interface for state-changing operations.
type Command interface {
	CommandName() string
}

// CreateUserCommand creates a new user record.
type CreateUserCommand struct {
	Name       string
	Email      string
	Role       string
	Status     user.Status
	LastLogin  *string
	DateJoined string
}

func (c CreateUserCommand) CommandName() string { return "CreateUser" }

// UpdateUserCommand partially updates an existing record. Nil patch fields
// are left untouched; the identifier itself cannot change.
type UpdateUserCommand struct {
	UserID int
	Patch  user.Patch
}

func (c UpdateUserCommand) CommandName() string { return "UpdateUser" }

// DeleteUserCommand removes a record.
type DeleteUserCommand struct {
	UserID int
}

func (c DeleteUserCommand) CommandName() string { return "DeleteUser" }
