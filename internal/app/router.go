package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"skillbridge_backend/docs"
	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/middleware"
	"skillbridge_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)

		auth := public.Group("/auth")
		{
			auth.POST("/signup", c.auth.Signup)
			auth.POST("/login", c.auth.Login)
			auth.POST("/refresh", c.auth.Refresh)
		}
	}

	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg, a.Redis))
	{
		auth := authed.Group("/auth")
		{
			auth.POST("/logout", c.auth.Logout)
			auth.GET("/verify", c.auth.Verify)
			auth.POST("/change-password", c.auth.ChangePassword)
		}

		authed.POST("/profile/setup", c.profile.Setup)
		authed.GET("/profile", c.profile.Get)

		dashboard := authed.Group("/dashboard")
		{
			dashboard.GET("", c.dashboard.Get)
			dashboard.POST("/skills", c.dashboard.SaveSkills)
			dashboard.POST("/repo", c.dashboard.AddRepo)
			dashboard.POST("/resume", c.dashboard.UploadResume)
		}

		assessment := authed.Group("/assessment")
		{
			assessment.POST("/generate", c.assessment.Generate)
			assessment.POST("/submit", c.assessment.Submit)
			assessment.GET("/history", c.assessment.History)
		}

		authed.GET("/gap-analysis", c.analysis.Gap)
		authed.GET("/swot", c.analysis.Swot)
		authed.GET("/career-match", c.analysis.Career)
		authed.GET("/roadmap", c.analysis.Roadmap)
	}
}
