package appcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lllypuk/userdeck/internal/application/appcore"
)

func TestValidateRequired(t *testing.T) {
	require.NoError(t, appcore.ValidateRequired("name", "John"))

	err := appcore.ValidateRequired("name", "")
	require.Error(t, err)

	var verr *appcore.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
}

func TestValidateEnum(t *testing.T) {
	allowed := []string{"active", "inactive", "pending"}

	require.NoError(t, appcore.ValidateEnum("status", "pending", allowed))
	require.Error(t, appcore.ValidateEnum("status", "frozen", allowed))
	require.Error(t, appcore.ValidateEnum("status", "", allowed))
}

func TestValidatePositive(t *testing.T) {
	require.NoError(t, appcore.ValidatePositive("page", 1))
	require.Error(t, appcore.ValidatePositive("page", 0))
	require.Error(t, appcore.ValidatePositive("page", -3))
}

func TestValidateRange(t *testing.T) {
	require.NoError(t, appcore.ValidateRange("pageSize", 1, 1, 100))
	require.NoError(t, appcore.ValidateRange("pageSize", 100, 1, 100))
	require.Error(t, appcore.ValidateRange("pageSize", 0, 1, 100))
	require.Error(t, appcore.ValidateRange("pageSize", 101, 1, 100))
}
