package handlers

import (
	"context"
	"net/http"
	"time"

	"vibespace/models"
	"vibespace/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadPostMedia attaches the uploaded file to a processing post. On
// success the post flips to published; if the upload fails the post is
// marked failed so feeds never surface it.
func UploadPostMedia(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media uploads are not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	post, err := postSvc.Get(ctx, postID)
	if err != nil {
		respondServiceError(c, "UploadPostMedia", err)
		return
	}
	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your post"})
		return
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read media file"})
		return
	}
	defer file.Close()

	url, err := media.Upload(ctx, file, "posts", postID.Hex())
	if err != nil {
		status := models.PostStatusFailed
		if uerr := postSvc.Update(ctx, postID, services.UpdatePostInput{Status: &status}); uerr != nil {
			respondServiceError(c, "UploadPostMedia", uerr)
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Media upload failed"})
		return
	}

	status := models.PostStatusPublished
	if err := postSvc.Update(ctx, postID, services.UpdatePostInput{ContentURL: &url, Status: &status}); err != nil {
		respondServiceError(c, "UploadPostMedia", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contentUrl": url, "status": status})
}

// UploadMedia stores a standalone file (story or chat media) and returns
// its URL. The caller then references the URL in a create call.
func UploadMedia(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	if media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Media uploads are not configured"})
		return
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read media file"})
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	url, err := media.Upload(ctx, file, "media", primitive.NewObjectID().Hex())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Media upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
