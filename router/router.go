package router

import (
	"net/http"
	"time"

	"formforge/config"
	"formforge/controllers"
	"formforge/generation"
	"formforge/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Initialize wires all routes and middlewares: public auth + shared-form
// routes, then the authenticated API.
func Initialize(r *gin.Engine, cfg config.Configuration, service *generation.Service, log *zap.SugaredLogger) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(controllers.SetFormServiceToContext(service))

	controllers.ConfigureMedia(controllers.MediaSettings{
		CloudName:    cfg.Media.CloudName,
		ApiKey:       cfg.Media.ApiKey,
		ApiSecret:    cfg.Media.ApiSecret,
		UploadPreset: cfg.Media.UploadPreset,
	})

	logged := requestLogger(log)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
	})

	// Public (no auth)
	api.POST("/auth/register", logged, controllers.Register)
	api.POST("/auth/login", logged, controllers.Login)
	api.POST("/auth/logout", logged, controllers.Logout)
	api.GET("/public/forms/:slug", logged, controllers.GetPublicForm)
	api.POST("/public/forms/:slug/submit", logged, controllers.SubmitPublicForm)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/auth/profile", logged, controllers.Profile)

	auth.POST("/forms/generate", logged, controllers.GenerateForm)
	auth.GET("/forms", logged, controllers.GetForms)
	auth.GET("/forms/:formId", logged, controllers.GetFormByID)
	auth.PATCH("/forms/:formId", logged, controllers.UpdateForm)
	auth.DELETE("/forms/:formId", logged, controllers.DeleteForm)
	auth.GET("/forms/:formId/submissions", logged, controllers.GetFormSubmissions)

	auth.GET("/memories", logged, controllers.GetMemories)
	auth.POST("/media/signature", logged, controllers.CreateMediaSignature)

	log.Infow("routes initialized")
}
