package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/resumatch/backend/internal/utils"
)

// TokenTTL is how long an issued session token stays valid.
const TokenTTL = 7 * 24 * time.Hour

// TokenManager signs and verifies HS256 session tokens carrying the user id.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: TokenTTL}
}

func (m *TokenManager) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify returns the user id embedded in the token. Expired tokens and
// malformed/badly-signed tokens both fail with AUTHENTICATION but carry
// different messages.
func (m *TokenManager) Verify(raw string) (string, error) {
	const op = "TokenManager.Verify"

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", utils.E(utils.CodeAuthentication, op, "Token has expired. Please login again.", err)
		}
		return "", utils.E(utils.CodeAuthentication, op, "Authorization token is invalid", err)
	}
	if tok == nil || !tok.Valid || claims.Subject == "" {
		return "", utils.E(utils.CodeAuthentication, op, "Authorization token is invalid", nil)
	}
	return claims.Subject, nil
}
