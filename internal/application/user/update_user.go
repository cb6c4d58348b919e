package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/lllypuk/userdeck/internal/domain/errs"
)

// UpdateUserUseCase handles partial updates of a user record.
type UpdateUserUseCase struct {
	userRepo Repository
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase.
func NewUpdateUserUseCase(userRepo Repository) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo}
}

// Execute merges the patch onto the target record. When the email changes,
// a collision with any record other than the target is a conflict; updating
// a user's email to its own current value succeeds.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (Result, error) {
	if cmd.Patch.Email != nil {
		existing, err := uc.userRepo.FindByEmail(ctx, *cmd.Patch.Email)
		if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return Result{}, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if existing != nil && existing.ID() != cmd.UserID {
			return Result{}, ErrEmailAlreadyExists
		}
	}

	updated, err := uc.userRepo.Update(ctx, cmd.UserID, cmd.Patch)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, ErrUserNotFound
		}
		return Result{}, err
	}

	return Result{User: updated}, nil
}
