package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type createStoryRequest struct {
	Type       string `json:"type" binding:"required"`
	ContentURL string `json:"contentUrl" binding:"required"`
}

func CreateStory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and contentUrl are required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	story, err := storySvc.Create(ctx, userID, req.Type, req.ContentURL)
	if err != nil {
		respondServiceError(c, "CreateStory", err)
		return
	}

	c.JSON(http.StatusCreated, story)
}

// GetStories returns every story from the last 24 hours, newest first.
func GetStories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stories, err := storySvc.ListActive(ctx)
	if err != nil {
		respondServiceError(c, "GetStories", err)
		return
	}

	c.JSON(http.StatusOK, stories)
}

func ViewStory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	storyID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := storySvc.MarkViewed(ctx, storyID, userID); err != nil {
		respondServiceError(c, "ViewStory", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Viewed"})
}
