package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	Init("test-secret", 60)

	token, err := GenerateToken("user-1", "applicant")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "applicant", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	Init("test-secret", 60)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	Init("secret-one", 60)
	token, err := GenerateToken("user-1", "admin")
	require.NoError(t, err)

	Init("secret-two", 60)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	Init("test-secret", 0)
	tokenTTL = -time.Minute

	token, err := GenerateToken("user-1", "admin")
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword("short"))
}
