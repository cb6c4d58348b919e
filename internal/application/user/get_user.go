package user

import (
	"context"
	"errors"

	"github.com/lllypuk/userdeck/internal/domain/errs"
)

// GetUserUseCase handles retrieval of a single user.
type GetUserUseCase struct {
	userRepo QueryRepository
}

// NewGetUserUseCase creates a new GetUserUseCase.
func NewGetUserUseCase(userRepo QueryRepository) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo}
}

// Execute fetches the user or reports ErrUserNotFound.
func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (Result, error) {
	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, ErrUserNotFound
		}
		return Result{}, err
	}
	return Result{User: u}, nil
}
