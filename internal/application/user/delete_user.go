package user

import (
	"context"
	"fmt"
)

// DeleteUserUseCase handles user removal.
type DeleteUserUseCase struct {
	userRepo CommandRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase.
func NewDeleteUserUseCase(userRepo CommandRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo}
}

// Execute removes the user; an absent identifier is ErrUserNotFound.
// Removal is immediate and unconditional, and the identifier is never
// reassigned to a later record.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	deleted, err := uc.userRepo.Delete(ctx, cmd.UserID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
