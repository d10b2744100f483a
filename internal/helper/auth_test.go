package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
}

func TestVerifyTokenBearerPrefix(t *testing.T) {
	auth := SetupAuth("test-secret")

	token, err := auth.GenerateToken("admin")
	require.NoError(t, err)

	claims, err := auth.VerifyToken("Bearer " + token)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
}

func TestVerifyTokenRejectsBadInput(t *testing.T) {
	auth := SetupAuth("test-secret")

	_, err := auth.VerifyToken("")
	require.Error(t, err)

	_, err = auth.VerifyToken("not-a-token")
	require.Error(t, err)

	other := SetupAuth("other-secret")
	token, err := other.GenerateToken("admin")
	require.NoError(t, err)
	_, err = auth.VerifyToken(token)
	require.Error(t, err, "token signed with a different secret must fail")
}

func TestTokenCookie(t *testing.T) {
	auth := SetupAuth("test-secret")

	c := auth.TokenCookie("abc", time.Hour)
	require.Equal(t, TokenCookie, c.Name)
	require.Equal(t, "abc", c.Value)
	require.True(t, c.HTTPOnly)
	require.Equal(t, 3600, c.MaxAge)

	cleared := auth.TokenCookie("", 0)
	require.Equal(t, -1, cleared.MaxAge)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	auth := SetupAuth("test-secret")
	require.NoError(t, auth.VerifyPassword("s3cret", string(hash)))
	require.Error(t, auth.VerifyPassword("wrong", string(hash)))
}
