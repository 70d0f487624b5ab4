package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/resumatch/backend/internal/api/middleware"
	"github.com/resumatch/backend/internal/auth"
)

func newProtectedRouter(tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", middleware.JWTAuth(tokens), func(c *gin.Context) {
		uid, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	return r
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := newProtectedRouter(auth.NewTokenManager("secret"))

	for _, header := range []string{"", "Bearer ", "Token abc", "bearer-ish"} {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		require.Contains(t, w.Body.String(), "Authorization token is missing")
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	r := newProtectedRouter(auth.NewTokenManager("secret"))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.here")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Authorization token is invalid")
}

func TestJWTAuth_ValidTokenSetsUserID(t *testing.T) {
	tokens := auth.NewTokenManager("secret")
	r := newProtectedRouter(tokens)

	token, err := tokens.Issue("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "user-42")
}

func TestJWTAuth_WrongSecretRejected(t *testing.T) {
	r := newProtectedRouter(auth.NewTokenManager("secret"))

	token, err := auth.NewTokenManager("other").Issue("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
