package user

import (
	"context"

	"github.com/lllypuk/userdeck/internal/domain/user"
)

// CommandRepository defines the mutation side of the user store.
// Interface declared on the consumer side (application layer).
type CommandRepository interface {
	// Insert stores a new user, assigns the next identifier and returns the
	// stored record. Identifiers are monotonically increasing and never
	// reused, even after deletion.
	Insert(ctx context.Context, u *user.User) (*user.User, error)

	// Update merges the patch onto the stored record and returns the result.
	// Returns errs.ErrNotFound when id is absent.
	Update(ctx context.Context, id int, patch user.Patch) (*user.User, error)

	// Delete removes the record. The boolean reports whether anything was
	// removed.
	Delete(ctx context.Context, id int) (bool, error)
}

// QueryRepository defines the read side of the user store.
// Interface declared on the consumer side (application layer).
type QueryRepository interface {
	// FindByID finds a user by identifier. Returns errs.ErrNotFound when absent.
	FindByID(ctx context.Context, id int) (*user.User, error)

	// FindByEmail finds the first user with an exactly matching email.
	// Returns errs.ErrNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// ListAll returns the full collection in insertion order.
	ListAll(ctx context.Context) ([]*user.User, error)

	// Count returns the total number of stored users.
	Count(ctx context.Context) (int, error)
}

// Repository combines the command and query interfaces for use cases that
// need both sides.
type Repository interface {
	CommandRepository
	QueryRepository
}
