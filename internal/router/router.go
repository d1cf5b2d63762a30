package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vowsnap-dev/vowsnap/internal/handlers"
	"github.com/vowsnap-dev/vowsnap/internal/middleware"
	"github.com/vowsnap-dev/vowsnap/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/ws/:templateId", handlers.WebSocket)

		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login)
			auth.POST("/register", middleware.AdminMiddleware(), handlers.Register)
			auth.GET("/me", middleware.AdminMiddleware(), handlers.Me)
		}

		admin := api.Group("/admin", middleware.AdminMiddleware())
		{
			admin.GET("/templates", handlers.ListTemplates)
			admin.POST("/templates", handlers.CreateTemplate)
			admin.PATCH("/templates/:templateId", handlers.UpdateTemplate)
			admin.DELETE("/templates/:templateId", handlers.DeleteTemplate)
		}

		// Guest surface: no tokens, identity is (userName, deviceId)
		// payload fields. Everything is scoped by the path templateId.
		templates := api.Group("/templates")
		{
			templates.GET("/slug/:slug", handlers.GetTemplateBySlug)
			templates.GET("/:templateId", handlers.GetTemplate)

			templates.GET("/:templateId/media", handlers.GetMedia)
			templates.POST("/:templateId/media", handlers.CreateMedia)
			templates.PATCH("/:templateId/media/:mediaId", handlers.UpdateMedia)
			templates.DELETE("/:templateId/media/:mediaId", handlers.DeleteMedia)

			templates.GET("/:templateId/comments", handlers.GetComments)
			templates.POST("/:templateId/comments", handlers.CreateComment)
			templates.DELETE("/:templateId/comments/:commentId", handlers.DeleteComment)

			templates.GET("/:templateId/likes", handlers.GetLikes)
			templates.POST("/:templateId/likes/toggle", handlers.ToggleLike)

			templates.GET("/:templateId/stories", handlers.GetStories)
			templates.POST("/:templateId/stories", handlers.CreateStory)
			templates.POST("/:templateId/stories/cleanup", handlers.CleanupStories)
			templates.POST("/:templateId/stories/:storyId/view", handlers.ViewStory)
			templates.DELETE("/:templateId/stories/:storyId", handlers.DeleteStory)

			templates.GET("/:templateId/timeline", handlers.GetTimelineEvents)
			templates.POST("/:templateId/timeline", handlers.CreateTimelineEvent)
			templates.PATCH("/:templateId/timeline/:eventId", handlers.UpdateTimelineEvent)
			templates.DELETE("/:templateId/timeline/:eventId", handlers.DeleteTimelineEvent)

			templates.GET("/:templateId/live-users", handlers.GetLiveUsers)
			templates.POST("/:templateId/live-users", handlers.UpsertLiveUser)
			templates.PATCH("/:templateId/live-users/:deviceId", handlers.UpdateLiveUserStatus)

			templates.GET("/:templateId/settings", handlers.GetSettings)
			templates.PATCH("/:templateId/settings", handlers.UpdateSettings)
		}
	}

	return r
}
