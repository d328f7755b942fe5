package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SemanticSearch ranks published posts against the query by embedding
// similarity. Degrades to an empty result set when embeddings are down.
func SemanticSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	posts, err := searchSvc.Semantic(ctx, query)
	if err != nil {
		respondServiceError(c, "SemanticSearch", err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

type suggestCaptionsRequest struct {
	Topic string `json:"topic" binding:"required"`
}

func SuggestCaptions(c *gin.Context) {
	var req suggestCaptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, gin.H{"captions": assistSvc.SuggestCaptions(ctx, req.Topic)})
}

type suggestHashtagsRequest struct {
	Caption string `json:"caption" binding:"required"`
}

func SuggestHashtags(c *gin.Context) {
	var req suggestHashtagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Caption is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, gin.H{"hashtags": assistSvc.SuggestHashtags(ctx, req.Caption)})
}
