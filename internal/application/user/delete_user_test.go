package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "github.com/lllypuk/userdeck/internal/application/user"
)

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the record from later queries", func(t *testing.T) {
		repo := seededRepo(t)
		del := userapp.NewDeleteUserUseCase(repo)
		get := userapp.NewGetUserUseCase(repo)
		list := userapp.NewListUsersUseCase(repo)

		require.NoError(t, del.Execute(ctx, userapp.DeleteUserCommand{UserID: 6}))

		_, err := get.Execute(ctx, userapp.GetUserQuery{UserID: 6})
		require.ErrorIs(t, err, userapp.ErrUserNotFound)

		res, err := list.Execute(ctx, userapp.ListUsersQuery{Search: "chen"})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Total)
	})

	t.Run("deleted id is never reassigned", func(t *testing.T) {
		repo := seededRepo(t)
		del := userapp.NewDeleteUserUseCase(repo)
		create := userapp.NewCreateUserUseCase(repo)

		require.NoError(t, del.Execute(ctx, userapp.DeleteUserCommand{UserID: 12}))

		res, err := create.Execute(ctx, validCreateCommand())
		require.NoError(t, err)
		assert.Equal(t, 13, res.User.ID())
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		del := userapp.NewDeleteUserUseCase(seededRepo(t))
		err := del.Execute(ctx, userapp.DeleteUserCommand{UserID: 999})
		require.ErrorIs(t, err, userapp.ErrUserNotFound)
	})

	t.Run("delete twice reports not found the second time", func(t *testing.T) {
		del := userapp.NewDeleteUserUseCase(seededRepo(t))
		require.NoError(t, del.Execute(ctx, userapp.DeleteUserCommand{UserID: 1}))
		require.ErrorIs(t, del.Execute(ctx, userapp.DeleteUserCommand{UserID: 1}), userapp.ErrUserNotFound)
	})
}
