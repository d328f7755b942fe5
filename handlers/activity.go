package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
)

// GetActivity returns the caller's notification list, newest first, with
// actor profiles and post thumbnails joined in.
func GetActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := activitySvc.List(ctx, userID, 0)
	if err != nil {
		respondServiceError(c, "GetActivity", err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// MarkActivitySeen clears the caller's unseen notifications in one write.
func MarkActivitySeen(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	modified, err := activitySvc.MarkAllSeen(ctx, userID)
	if err != nil {
		respondServiceError(c, "MarkActivitySeen", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"marked": modified})
}

func GetUnseenCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := activitySvc.UnseenCount(ctx, userID)
	if err != nil {
		respondServiceError(c, "GetUnseenCount", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// SubscribePush stores the browser push subscription for the caller. One
// subscription per user; resubscribing replaces the old endpoint.
func SubscribePush(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var sub webpush.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil || sub.Endpoint == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := pushSvc.Subscribe(ctx, userID, sub); err != nil {
		respondServiceError(c, "SubscribePush", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Subscribed"})
}
