package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/resumatch/backend/internal/api/handlers"
	"github.com/resumatch/backend/internal/api/middleware"
	"github.com/resumatch/backend/internal/auth"
)

type Deps struct {
	Tokens *auth.TokenManager
	Auth   *handlers.AuthHandler
	CV     *handlers.CVHandler
	Jobs   *handlers.JobHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
		})
	})

	api := r.Group("/api")

	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)

	// Protected routes (JWT)
	protected := api.Group("/")
	protected.Use(middleware.JWTAuth(d.Tokens))

	protected.GET("/auth/me", d.Auth.Me)

	protected.POST("/cv/upload-cv", d.CV.Upload)
	protected.GET("/cv/profile", d.CV.GetProfile)
	protected.DELETE("/cv/profile", d.CV.DeleteProfile)

	protected.GET("/jobs", d.Jobs.GetJobs)
}
