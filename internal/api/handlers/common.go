package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resumatch/backend/internal/utils"
)

// ErrorResponse is the error body shape: operational errors surface their
// own message, anything else reduces to a generic 500.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   bool   `json:"error"`
}

func writeError(c *gin.Context, err error) {
	// keep full detail server-side for the request logger
	_ = c.Error(err)

	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, ErrorResponse{Message: ae.Message, Error: true})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Internal server error",
		Error:   true,
	})
}

func requireUserID(c *gin.Context) (string, bool) {
	if v, ok := c.Get("user_id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}

	writeError(c, utils.E(utils.CodeAuthentication, "Auth", "Authorization token is missing", nil))
	return "", false
}
