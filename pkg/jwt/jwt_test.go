package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTUtil_GenerateAndValidate(t *testing.T) {
	util := NewJWTUtil("test-secret", "1h")

	token, err := util.GenerateToken("user-1", "dispatcher")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := util.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "dispatcher", claims.Username)
}

func TestJWTUtil_RejectsTokenFromOtherSecret(t *testing.T) {
	token, err := NewJWTUtil("secret-a", "1h").GenerateToken("user-1", "dispatcher")
	require.NoError(t, err)

	_, err = NewJWTUtil("secret-b", "1h").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTUtil_RejectsGarbage(t *testing.T) {
	util := NewJWTUtil("test-secret", "1h")

	_, err := util.ValidateToken("not.a.token")
	assert.Error(t, err)
}
