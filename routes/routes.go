package routes

import (
	"time"

	"detailflow/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSkillRoutes registers the tool catalog and invocation endpoints.
func RegisterSkillRoutes(r *gin.Engine, sh *handlers.SkillsHandler) {
	api := r.Group("/api/skills")
	{
		api.GET("", sh.ListToolsHandler)
		api.POST("/:name", sh.InvokeToolHandler)
	}
}

// RegisterHealthRoute registers the health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.SkillsHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSkillRoutes(r, sh)
	RegisterHealthRoute(r)
}
