package routes

import (
	"time"

	"vibespace/config"
	"vibespace/handlers"
	"vibespace/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg config.Config) *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080", "http://127.0.0.1:8080", "http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public routes
	router.GET("/api/vapid-public-key", func(c *gin.Context) {
		c.JSON(200, gin.H{"key": cfg.VAPIDPublicKey})
	})

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))

	// Mutations get a per-address rate limit on top of auth.
	writes := protected.Group("")
	writes.Use(middleware.RateLimit(60, time.Minute))

	// Profile
	protected.GET("/me", handlers.GetMe)
	writes.PUT("/me", handlers.UpdateProfile)
	protected.GET("/user/:id", handlers.GetUser)
	protected.GET("/user/:id/posts", handlers.GetUserPosts)
	protected.GET("/user/:id/vibe", handlers.GetVibe)
	protected.GET("/username/:username", handlers.GetUserByUsername)
	writes.POST("/user/:id/follow", handlers.ToggleFollow)

	// Posts
	writes.POST("/post", handlers.CreatePost)
	protected.GET("/post/:id", handlers.GetPost)
	writes.PATCH("/post/:id", handlers.UpdatePost)
	writes.DELETE("/post/:id", handlers.DeletePost)
	writes.POST("/post/:id/like", handlers.ToggleLike)
	writes.POST("/post/:id/save", handlers.ToggleSave)
	writes.POST("/post/:id/comments", handlers.AddComment)
	protected.GET("/post/:id/comments", handlers.GetComments)
	writes.POST("/post/:id/media", handlers.UploadPostMedia)
	writes.POST("/upload", handlers.UploadMedia)

	// Feeds
	protected.GET("/feed", handlers.GetFeed)
	protected.GET("/feed/foryou", handlers.GetForYou)

	// Stories
	writes.POST("/story", handlers.CreateStory)
	protected.GET("/stories", handlers.GetStories)
	writes.POST("/story/:id/view", handlers.ViewStory)

	// Search and assists
	protected.GET("/search", handlers.SemanticSearch)
	writes.POST("/assist/captions", handlers.SuggestCaptions)
	writes.POST("/assist/hashtags", handlers.SuggestHashtags)

	// Activity
	protected.GET("/activity", handlers.GetActivity)
	protected.GET("/activity/unseen", handlers.GetUnseenCount)
	writes.POST("/activity/seen", handlers.MarkActivitySeen)
	writes.POST("/subscribe", handlers.SubscribePush)

	// Chats
	protected.GET("/chats", handlers.GetChats)
	writes.POST("/chats/direct", handlers.CreateDirectChat)
	writes.POST("/chats/group", handlers.CreateGroupChat)
	protected.GET("/chats/:id/messages", handlers.GetMessages)
	writes.POST("/chats/:id/messages", handlers.SendMessage)
	writes.POST("/chats/:id/read", handlers.MarkChatRead)

	// Realtime events (token passed as query parameter)
	router.GET("/ws", middleware.JWTAuth(cfg.JWTSecret), handlers.WebSocket)

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
