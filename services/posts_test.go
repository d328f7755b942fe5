package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLikeUpdatePairsCounterWithMembership(t *testing.T) {
	userID := primitive.NewObjectID()

	like := likeUpdate(false, userID)
	assert.Equal(t, bson.M{"likes": 1}, like["$inc"])
	assert.Equal(t, bson.M{"likedBy": userID}, like["$addToSet"])
	assert.NotContains(t, like, "$pull")

	unlike := likeUpdate(true, userID)
	assert.Equal(t, bson.M{"likes": -1}, unlike["$inc"])
	assert.Equal(t, bson.M{"likedBy": userID}, unlike["$pull"])
	assert.NotContains(t, unlike, "$addToSet")
}

func TestLikeUpdateToggleTwiceIsNeutral(t *testing.T) {
	userID := primitive.NewObjectID()

	like := likeUpdate(false, userID)
	unlike := likeUpdate(true, userID)

	// The counter deltas cancel and the membership operations are exact
	// inverses, so a like/unlike round trip restores the original document.
	net := like["$inc"].(bson.M)["likes"].(int) + unlike["$inc"].(bson.M)["likes"].(int)
	assert.Zero(t, net)
	assert.Equal(t, like["$addToSet"], unlike["$pull"])
}
