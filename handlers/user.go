package handlers

import (
	"context"
	"net/http"
	"time"

	"vibespace/services"

	"github.com/gin-gonic/gin"
)

func GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := userSvc.Get(ctx, userID)
	if err != nil {
		respondServiceError(c, "GetMe", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func GetUser(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := userSvc.Get(ctx, targetID)
	if err != nil {
		respondServiceError(c, "GetUser", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func GetUserByUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := userSvc.GetByUsername(ctx, username)
	if err != nil {
		respondServiceError(c, "GetUserByUsername", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Name      *string `json:"name"`
	Avatar    *string `json:"avatar"`
	Bio       *string `json:"bio"`
	IsPrivate *bool   `json:"isPrivate"`
}

func UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := userSvc.UpdateProfile(ctx, userID, services.UpdateProfileInput{
		Name:      req.Name,
		Avatar:    req.Avatar,
		Bio:       req.Bio,
		IsPrivate: req.IsPrivate,
	})
	if err != nil {
		respondServiceError(c, "UpdateProfile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// ToggleFollow flips the follow edge toward the target user and reports the
// new state.
func ToggleFollow(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	following, err := userSvc.ToggleFollow(ctx, userID, targetID)
	if err != nil {
		respondServiceError(c, "ToggleFollow", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}

// ToggleSave flips a post in the caller's saved collection.
func ToggleSave(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	saved, err := userSvc.ToggleSave(ctx, userID, postID)
	if err != nil {
		respondServiceError(c, "ToggleSave", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// GetVibe returns a one-line AI summary of a user's recent posting mood.
func GetVibe(c *gin.Context) {
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c.JSON(http.StatusOK, gin.H{"vibe": assistSvc.VibeSummary(ctx, targetID)})
}
