package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := MintToken("u1", "finance", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "finance", claims.Role)
	assert.Equal(t, "u1", claims.Subject)
}

func TestParseToken_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret.
	t.Setenv("JWT_SECRET", "other-secret")
	token, err := MintToken("u1", "user", time.Hour)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "test-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestMintToken_ExpiredRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := MintToken("u1", "user", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestMintToken_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := MintToken("u1", "user", time.Hour)
	assert.Error(t, err)
}
