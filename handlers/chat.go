package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"vibespace/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createDirectChatRequest struct {
	UserID primitive.ObjectID `json:"userId" binding:"required"`
}

// CreateDirectChat finds or creates the one-on-one chat with another user.
func CreateDirectChat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createDirectChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chat, err := chatSvc.CreateDirect(ctx, userID, req.UserID)
	if err != nil {
		respondServiceError(c, "CreateDirectChat", err)
		return
	}

	c.JSON(http.StatusCreated, chat)
}

type createGroupChatRequest struct {
	Name         string               `json:"name" binding:"required"`
	Participants []primitive.ObjectID `json:"participants" binding:"required"`
}

func CreateGroupChat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createGroupChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and participants are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chat, err := chatSvc.CreateGroup(ctx, userID, req.Name, req.Participants)
	if err != nil {
		respondServiceError(c, "CreateGroupChat", err)
		return
	}

	c.JSON(http.StatusCreated, chat)
}

func GetChats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chats, err := chatSvc.ListForUser(ctx, userID)
	if err != nil {
		respondServiceError(c, "GetChats", err)
		return
	}

	c.JSON(http.StatusOK, chats)
}

type sendMessageRequest struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	MediaURL string `json:"mediaUrl"`
}

func SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	chatID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	message, err := chatSvc.SendMessage(ctx, chatID, userID, services.SendMessageInput{
		Type:     req.Type,
		Content:  req.Content,
		MediaURL: req.MediaURL,
	})
	if err != nil {
		respondServiceError(c, "SendMessage", err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func GetMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	chatID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	messages, err := chatSvc.ListMessages(ctx, chatID, userID, limit)
	if err != nil {
		respondServiceError(c, "GetMessages", err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// MarkChatRead stamps the caller's read receipt on every unread message in
// the chat in one batched write.
func MarkChatRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	chatID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	modified, err := chatSvc.MarkRead(ctx, chatID, userID)
	if err != nil {
		respondServiceError(c, "MarkChatRead", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked": modified})
}
