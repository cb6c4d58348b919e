package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "github.com/lllypuk/userdeck/internal/application/user"
)

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	uc := userapp.NewGetUserUseCase(seededRepo(t))

	t.Run("existing user", func(t *testing.T) {
		res, err := uc.Execute(ctx, userapp.GetUserQuery{UserID: 6})
		require.NoError(t, err)
		assert.Equal(t, "Emily Chen", res.User.Name())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := uc.Execute(ctx, userapp.GetUserQuery{UserID: 999})
		require.ErrorIs(t, err, userapp.ErrUserNotFound)
	})
}
