package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resumatch/backend/internal/auth"
	"github.com/resumatch/backend/internal/utils"
)

type authError struct {
	Message string `json:"message"`
	Error   bool   `json:"error"`
}

// JWTAuth extracts and verifies the bearer token, attaching the
// authenticated user id to the request context.
func JWTAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, authError{
				Message: "Authorization token is missing",
				Error:   true,
			})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, authError{
				Message: "Authorization token is missing",
				Error:   true,
			})
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			msg := "Authorization token is invalid"
			var ae *utils.AppError
			if errors.As(err, &ae) && ae.Message != "" {
				msg = ae.Message
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, authError{
				Message: msg,
				Error:   true,
			})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
