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

type createPostRequest struct {
	Type          string               `json:"type" binding:"required"`
	Caption       string               `json:"caption"`
	Hashtags      []string             `json:"hashtags"`
	Tags          []models.PostTag     `json:"tags"`
	Collaborators []primitive.ObjectID `json:"collaborators"`
	IsSponsored   bool                 `json:"isSponsored"`
}

// CreatePost registers a post in processing status. Media is uploaded
// separately via UploadPostMedia, which flips it to published.
func CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if req.Caption != "" {
		if verdict := assistSvc.CheckContent(ctx, req.Caption); !verdict.Allowed {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content rejected", "reason": verdict.Reason})
			return
		}
	}

	post, err := postSvc.Create(ctx, userID, services.CreatePostInput{
		Type:          req.Type,
		Caption:       req.Caption,
		Hashtags:      req.Hashtags,
		Tags:          req.Tags,
		Collaborators: req.Collaborators,
		IsSponsored:   req.IsSponsored,
	})
	if err != nil {
		respondServiceError(c, "CreatePost", err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func GetPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	post, err := postSvc.Get(ctx, postID)
	if err != nil {
		respondServiceError(c, "GetPost", err)
		return
	}

	c.JSON(http.StatusOK, post)
}

type updatePostRequest struct {
	Caption *string `json:"caption"`
}

// UpdatePost lets the author edit the caption. Content URL and status are
// only ever changed by the upload path.
func UpdatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	post, err := postSvc.Get(ctx, postID)
	if err != nil {
		respondServiceError(c, "UpdatePost", err)
		return
	}
	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your post"})
		return
	}

	if err := postSvc.Update(ctx, postID, services.UpdatePostInput{Caption: req.Caption}); err != nil {
		respondServiceError(c, "UpdatePost", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post updated"})
}

func DeletePost(c *gin.Context) {
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

	post, err := postSvc.Get(ctx, postID)
	if err != nil {
		respondServiceError(c, "DeletePost", err)
		return
	}
	if post.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your post"})
		return
	}

	if err := postSvc.Delete(ctx, postID); err != nil {
		respondServiceError(c, "DeletePost", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// ToggleLike flips the caller's like on a post and reports the new state.
func ToggleLike(c *gin.Context) {
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

	liked, err := postSvc.ToggleLike(ctx, postID, userID)
	if err != nil {
		respondServiceError(c, "ToggleLike", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

type addCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func AddComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if verdict := assistSvc.CheckContent(ctx, req.Text); !verdict.Allowed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content rejected", "reason": verdict.Reason})
		return
	}

	comment, err := postSvc.AddComment(ctx, postID, userID, req.Text)
	if err != nil {
		respondServiceError(c, "AddComment", err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func GetComments(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	comments, err := postSvc.ListComments(ctx, postID, 0)
	if err != nil {
		respondServiceError(c, "GetComments", err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// GetFeed returns the chronological feed of recent published posts, ranked
// by relevance with sponsored posts surfaced first.
func GetFeed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feed, err := feedSvc.Following(ctx, userID)
	if err != nil {
		respondServiceError(c, "GetFeed", err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// GetForYou returns the recommendation feed built from like overlap.
func GetForYou(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	feed, err := feedSvc.ForYou(ctx, userID)
	if err != nil {
		respondServiceError(c, "GetForYou", err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

func GetUserPosts(c *gin.Context) {
	authorID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	posts, err := feedSvc.UserPosts(ctx, authorID)
	if err != nil {
		respondServiceError(c, "GetUserPosts", err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
