package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFindByIdentityQuery_UsernameOnly(t *testing.T) {
	query, args, err := buildFindByIdentityQuery("john", "")
	require.NoError(t, err)

	assert.Contains(t, query, "username = $1")
	assert.NotContains(t, query, "email =")
	assert.Equal(t, []any{"john"}, args)
}

func TestBuildFindByIdentityQuery_EmailOnly(t *testing.T) {
	query, args, err := buildFindByIdentityQuery("", "john@example.com")
	require.NoError(t, err)

	assert.Contains(t, query, "email = $1")
	assert.NotContains(t, query, "username =")
	assert.Equal(t, []any{"john@example.com"}, args)
}

func TestBuildFindByIdentityQuery_Both(t *testing.T) {
	query, args, err := buildFindByIdentityQuery("john", "john@example.com")
	require.NoError(t, err)

	assert.Contains(t, query, "username = $1")
	assert.Contains(t, query, "OR")
	assert.Contains(t, query, "email = $2")
	assert.Equal(t, []any{"john", "john@example.com"}, args)
}

func TestBuildUpdateRefreshTokenQuery_Set(t *testing.T) {
	token := "refresh"
	query, args, err := buildUpdateRefreshTokenQuery("id-1", &token)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE users")
	assert.Contains(t, query, "refresh_token = $1")
	assert.Contains(t, query, "user_id = $2")
	require.Len(t, args, 2)
	assert.Equal(t, &token, args[0])
	assert.Equal(t, "id-1", args[1])
}

func TestBuildUpdateRefreshTokenQuery_Clear(t *testing.T) {
	query, args, err := buildUpdateRefreshTokenQuery("id-1", nil)
	require.NoError(t, err)

	assert.Contains(t, query, "refresh_token = $1")
	require.Len(t, args, 2)
	assert.Nil(t, args[0])
}
