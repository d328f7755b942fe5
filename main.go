package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vibespace/ai"
	"vibespace/config"
	"vibespace/database"
	"vibespace/handlers"
	"vibespace/routes"
	"vibespace/services"
	"vibespace/storage"
	"vibespace/websocket"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Vibespace server...")

	cfg := config.Load()
	if cfg.JWTSecret == "" || cfg.MongoURI == "" {
		log.Fatal("JWT_SECRET and MONGODB_URI must be set")
	}

	// ===== MONGODB =====
	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.ConnectMongo(); err != nil {
			dbErr = err
			log.Printf("MongoDB connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to MongoDB: ", dbErr)
	}
	log.Println("MongoDB connected")

	// ===== GIN MODE =====
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ===== COLLABORATORS =====
	var inference ai.Inference
	if client, err := ai.NewOpenAI(cfg.OpenAIKey); err != nil {
		log.Printf("AI features degraded: %v", err)
		inference = ai.Disabled{}
	} else {
		inference = client
	}

	var media *storage.MediaStore
	if store, err := storage.NewMediaStore(cfg.CloudinaryURL); err != nil {
		log.Printf("Media uploads disabled: %v", err)
	} else {
		media = store
	}

	hub := websocket.NewHub()
	go hub.Start()

	// ===== SERVICES =====
	push := services.NewPushSender(database.PushSubs, cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.PushSubscriber)
	activity := services.NewActivityService(database.Activity, hub, push)
	posts := services.NewPostService(database.Posts, database.Comments, database.Users, activity)
	users := services.NewUserService(database.Users, activity)
	ads := services.NewAdService(database.Ads, database.Posts, inference)
	feed := services.NewFeedService(database.Posts, database.Users, ads)
	chat := services.NewChatService(database.Chats, database.Messages, hub)
	stories := services.NewStoryService(database.Stories, database.Users)
	search := services.NewSearchService(database.Posts, database.Users, inference)
	assist := services.NewAssistService(database.Posts, inference)

	handlers.Init(handlers.Deps{
		Hub:      hub,
		Media:    media,
		Posts:    posts,
		Users:    users,
		Feed:     feed,
		Activity: activity,
		Chat:     chat,
		Stories:  stories,
		Search:   search,
		Assist:   assist,
		Push:     push,
	})

	// ===== SERVER =====
	router := routes.SetupRouter(cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}
	database.DisconnectMongo()

	log.Println("Server stopped")
}
