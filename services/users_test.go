package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToggleFollowRejectsSelfFollow(t *testing.T) {
	svc := NewUserService(nil, nil)
	me := primitive.NewObjectID()

	_, err := svc.ToggleFollow(context.Background(), me, me)

	assert.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowUpdatesMirrorBothSides(t *testing.T) {
	userID := primitive.NewObjectID()
	targetID := primitive.NewObjectID()

	userUpdate, targetUpdate := followUpdates(false, userID, targetID)
	assert.Equal(t, bson.M{"$addToSet": bson.M{"following": targetID}}, userUpdate)
	assert.Equal(t, bson.M{"$addToSet": bson.M{"followers": userID}}, targetUpdate)

	userUpdate, targetUpdate = followUpdates(true, userID, targetID)
	assert.Equal(t, bson.M{"$pull": bson.M{"following": targetID}}, userUpdate)
	assert.Equal(t, bson.M{"$pull": bson.M{"followers": userID}}, targetUpdate)
}

func TestFollowUpdatesFollowThenUnfollowRestoresBothDocuments(t *testing.T) {
	userID := primitive.NewObjectID()
	targetID := primitive.NewObjectID()

	followUser, followTarget := followUpdates(false, userID, targetID)
	unfollowUser, unfollowTarget := followUpdates(true, userID, targetID)

	// Each unfollow operation is the exact inverse of the follow operation
	// on the same document, so the mirror cannot drift across a round trip.
	assert.Equal(t, followUser["$addToSet"], unfollowUser["$pull"])
	assert.Equal(t, followTarget["$addToSet"], unfollowTarget["$pull"])
}
