package handlers

import (
	"errors"
	"log"
	"net/http"

	"vibespace/services"
	"vibespace/storage"
	"vibespace/websocket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handler state, wired once at startup via Init.
var (
	hub         *websocket.Hub
	media       *storage.MediaStore
	postSvc     *services.PostService
	userSvc     *services.UserService
	feedSvc     *services.FeedService
	activitySvc *services.ActivityService
	chatSvc     *services.ChatService
	storySvc    *services.StoryService
	searchSvc   *services.SearchService
	assistSvc   *services.AssistService
	pushSvc     *services.PushSender
)

type Deps struct {
	Hub      *websocket.Hub
	Media    *storage.MediaStore
	Posts    *services.PostService
	Users    *services.UserService
	Feed     *services.FeedService
	Activity *services.ActivityService
	Chat     *services.ChatService
	Stories  *services.StoryService
	Search   *services.SearchService
	Assist   *services.AssistService
	Push     *services.PushSender
}

// Init sets the package-level collaborators used by all handlers.
func Init(deps Deps) {
	hub = deps.Hub
	media = deps.Media
	postSvc = deps.Posts
	userSvc = deps.Users
	feedSvc = deps.Feed
	activitySvc = deps.Activity
	chatSvc = deps.Chat
	storySvc = deps.Stories
	searchSvc = deps.Search
	assistSvc = deps.Assist
	pushSvc = deps.Push
}

// currentUserID reads the authenticated user set by the JWT middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondServiceError maps the service sentinels onto HTTP statuses.
func respondServiceError(c *gin.Context, op string, err error) {
	log.Printf("[%s] %v", op, err)
	switch {
	case errors.Is(err, services.ErrPostNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrChatNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotParticipant):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSelfFollow),
		errors.Is(err, services.ErrEmptyGroup),
		errors.Is(err, services.ErrInvalidType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// WebSocket upgrades the connection for the authenticated user. The JWT
// middleware has already validated the token (passed as ?token= on this
// route, since browsers cannot set headers on websocket upgrades).
func WebSocket(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	websocket.Handler(hub, userID)(c.Writer, c.Request)
}
