package services

import (
	"context"
	"log"
	"time"

	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Notifier delivers an event to a user's live connections. Delivery is
// best-effort; the stored activity record is the source of truth.
type Notifier interface {
	SendToUser(userID string, event string, payload interface{})
}

const activityListLimit = 50

type ActivityService struct {
	activity *mongo.Collection
	notifier Notifier
	push     *PushSender
}

func NewActivityService(activity *mongo.Collection, notifier Notifier, push *PushSender) *ActivityService {
	return &ActivityService{activity: activity, notifier: notifier, push: push}
}

// Emit stores an unseen activity record and fans it out to the notified
// user's live connections. Self-actions never produce a record, for every
// activity type.
func (s *ActivityService) Emit(ctx context.Context, activityType string, actorID, notifiedUserID primitive.ObjectID, postID *primitive.ObjectID) error {
	if actorID == notifiedUserID {
		return nil
	}

	activity := models.Activity{
		ID:             primitive.NewObjectID(),
		Type:           activityType,
		ActorID:        actorID,
		NotifiedUserID: notifiedUserID,
		PostID:         postID,
		Seen:           false,
		CreatedAt:      time.Now().Unix(),
	}

	if _, err := s.activity.InsertOne(ctx, activity); err != nil {
		return err
	}

	s.deliver(activity)
	return nil
}

// deliver pushes the record over websocket and web push. Failures are logged
// and swallowed; the record is already stored.
func (s *ActivityService) deliver(activity models.Activity) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Activity] Panic in delivery: %v", r)
			}
		}()

		if s.notifier != nil {
			s.notifier.SendToUser(activity.NotifiedUserID.Hex(), "activity", activity)
		}
		if s.push != nil {
			s.push.SendActivity(activity)
		}
	}()
}

// unseenFilter selects the records MarkAllSeen sweeps and UnseenCount counts.
// markSeenUpdate puts a swept record outside the filter, so repeating the
// sweep modifies nothing.
func unseenFilter(userID primitive.ObjectID) bson.M {
	return bson.M{"notifiedUserId": userID, "seen": false}
}

var markSeenUpdate = bson.M{"$set": bson.M{"seen": true}}

// MarkAllSeen flips every unseen record for the user in one batched write.
func (s *ActivityService) MarkAllSeen(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := s.activity.UpdateMany(ctx, unseenFilter(userID), markSeenUpdate)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// List returns the newest activity for a user, each record joined against the
// actor's current profile and, when a post is referenced, a thumbnail of it.
// The actor join is deliberately live: a renamed actor shows their latest
// identity on historical notifications.
func (s *ActivityService) List(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.ActivityView, error) {
	if limit <= 0 || limit > activityListLimit {
		limit = activityListLimit
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "notifiedUserId", Value: userID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "actorId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "actor"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$actor"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "posts"},
			{Key: "localField", Value: "postId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "post"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$post"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := s.activity.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		models.Activity `bson:",inline"`
		Actor           *models.User          `bson:"actor"`
		Post            *models.PostThumbnail `bson:"post"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	views := make([]models.ActivityView, len(rows))
	for i, row := range rows {
		views[i] = models.ActivityView{Activity: row.Activity, Post: row.Post}
		if row.Actor != nil {
			snap := models.Snapshot(*row.Actor)
			views[i].Actor = &snap
		}
	}
	return views, nil
}

// UnseenCount is used for the notification badge.
func (s *ActivityService) UnseenCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.activity.CountDocuments(ctx, unseenFilter(userID))
}
