package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/lllypuk/userdeck/internal/domain/errs"
	"github.com/lllypuk/userdeck/internal/domain/user"
)

// CreateUserUseCase handles user creation with the email-uniqueness check.
type CreateUserUseCase struct {
	userRepo Repository
}

// NewCreateUserUseCase creates a new CreateUserUseCase.
func NewCreateUserUseCase(userRepo Repository) *CreateUserUseCase {
	return &CreateUserUseCase{userRepo: userRepo}
}

// Execute validates the record, rejects duplicate emails and inserts.
// The uniqueness check runs before Insert so a conflicting create never
// advances the identifier counter.
func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (Result, error) {
	u, err := user.NewUser(cmd.Name, cmd.Email, cmd.Role, cmd.Status, cmd.LastLogin, cmd.DateJoined)
	if err != nil {
		return Result{}, err
	}

	existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return Result{}, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return Result{}, ErrEmailAlreadyExists
	}

	created, err := uc.userRepo.Insert(ctx, u)
	if err != nil {
		return Result{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return Result{User: created}, nil
}
