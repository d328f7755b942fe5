package services

import (
	"context"
	"testing"

	"vibespace/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEmitSuppressesSelfActions(t *testing.T) {
	svc := NewActivityService(nil, nil, nil)
	me := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	// Liking or commenting on your own post must not produce a record.
	// The service returns before touching the store, so nil collections
	// prove no write can have happened.
	for _, activityType := range []string{models.ActivityLike, models.ActivityComment, models.ActivityFollow, models.ActivityMention} {
		err := svc.Emit(context.Background(), activityType, me, me, &postID)
		assert.NoError(t, err, activityType)
	}
}

func TestMarkAllSeenScopesToOneUser(t *testing.T) {
	userID := primitive.NewObjectID()

	filter := unseenFilter(userID)

	assert.Equal(t, bson.M{"notifiedUserId": userID, "seen": false}, filter)
	assert.Equal(t, bson.M{"$set": bson.M{"seen": true}}, markSeenUpdate)
}

func TestMarkAllSeenSweepConverges(t *testing.T) {
	userID := primitive.NewObjectID()

	// A record matching the sweep's filter...
	record := bson.M{"notifiedUserId": userID, "seen": false}
	for field, want := range unseenFilter(userID) {
		assert.Equal(t, want, record[field])
	}

	// ...no longer matches once the sweep's update has been applied, so a
	// second sweep finds nothing to modify and the unseen count reads zero.
	for field, value := range markSeenUpdate["$set"].(bson.M) {
		record[field] = value
	}
	assert.NotEqual(t, unseenFilter(userID)["seen"], record["seen"])
	assert.Equal(t, userID, record["notifiedUserId"])
}
