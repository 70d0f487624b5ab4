package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/resumatch/backend/internal/api/handlers"
	"github.com/resumatch/backend/internal/api/routes"
	"github.com/resumatch/backend/internal/auth"
)

func TestHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Tokens: auth.NewTokenManager("secret"),
		Auth:   handlers.NewAuthHandler(nil),
		CV:     handlers.NewCVHandler(nil, 10<<20),
		Jobs:   handlers.NewJobHandler(nil),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
	require.Contains(t, w.Body.String(), "timestamp")
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Tokens: auth.NewTokenManager("secret"),
		Auth:   handlers.NewAuthHandler(nil),
		CV:     handlers.NewCVHandler(nil, 10<<20),
		Jobs:   handlers.NewJobHandler(nil),
	})

	cases := []struct {
		method, path string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/cv/upload-cv"},
		{http.MethodGet, "/api/cv/profile"},
		{http.MethodDelete, "/api/cv/profile"},
		{http.MethodGet, "/api/jobs"},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(c.method, c.path, nil))
		require.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", c.method, c.path)
	}
}
