package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserRole(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		role, err := ParseUserRole("admin")
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, role)

		role, err = ParseUserRole("user")
		require.NoError(t, err)
		assert.Equal(t, RoleUser, role)
	})

	t.Run("rejects unknown roles instead of defaulting", func(t *testing.T) {
		for _, s := range []string{"", "superuser", "Admin"} {
			_, err := ParseUserRole(s)
			assert.Error(t, err, "role %q must not parse", s)
		}
	})
}

func TestUserRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
}
