package services

import (
	"context"

	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userCache memoizes author lookups while one feed or story response is
// assembled. It is created inside the call and discarded with it — never
// shared across concurrent requests.
type userCache struct {
	users *mongo.Collection
	byID  map[primitive.ObjectID]*models.UserSnapshot
}

func newUserCache(users *mongo.Collection) *userCache {
	return &userCache{users: users, byID: make(map[primitive.ObjectID]*models.UserSnapshot)}
}

// snapshot returns the current profile projection for a user, or nil when the
// user is gone. Misses are memoized too.
func (c *userCache) snapshot(ctx context.Context, id primitive.ObjectID) *models.UserSnapshot {
	if snap, ok := c.byID[id]; ok {
		return snap
	}
	var user models.User
	if err := c.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		c.byID[id] = nil
		return nil
	}
	snap := models.Snapshot(user)
	c.byID[id] = &snap
	return &snap
}

func (c *userCache) decoratePosts(ctx context.Context, posts []models.Post) {
	for i := range posts {
		posts[i].User = c.snapshot(ctx, posts[i].UserID)
	}
}

func (c *userCache) decorateStories(ctx context.Context, stories []models.Story) {
	for i := range stories {
		stories[i].User = c.snapshot(ctx, stories[i].UserID)
	}
}
