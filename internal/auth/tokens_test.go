package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/resumatch/backend/internal/auth"
	"github.com/resumatch/backend/internal/utils"
)

const secret = "test-secret"

func TestIssueVerify_RoundTrip(t *testing.T) {
	m := auth.NewTokenManager(secret)

	token, err := m.Issue("64f0c0ffee64f0c0ffee64f0")
	require.NoError(t, err)

	got, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "64f0c0ffee64f0c0ffee64f0", got)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := auth.NewTokenManager("other-secret").Issue("abc")
	require.NoError(t, err)

	_, err = auth.NewTokenManager(secret).Verify(token)
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeAuthentication))
	require.Contains(t, err.Error(), "invalid")
}

func TestVerify_Expired(t *testing.T) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   "abc",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = auth.NewTokenManager(secret).Verify(raw)
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeAuthentication))
	require.Contains(t, err.Error(), "expired")
}

func TestVerify_Garbage(t *testing.T) {
	_, err := auth.NewTokenManager(secret).Verify("not.a.token")
	require.Error(t, err)
	require.True(t, utils.IsCode(err, utils.CodeAuthentication))
}
