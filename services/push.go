package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"vibespace/models"

	"github.com/SherClockHolmes/webpush-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PushSubscription struct {
	ID     primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID   `bson:"userId" json:"userId"`
	Sub    webpush.Subscription `bson:"sub" json:"sub"`
}

// PushSender delivers activity records as web push notifications. Everything
// here is best-effort: a missing subscription or a failed send is logged and
// dropped.
type PushSender struct {
	subs            *mongo.Collection
	vapidPublicKey  string
	vapidPrivateKey string
	subscriber      string
}

func NewPushSender(subs *mongo.Collection, vapidPublicKey, vapidPrivateKey, subscriber string) *PushSender {
	return &PushSender{
		subs:            subs,
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
		subscriber:      subscriber,
	}
}

// Subscribe keeps one subscription per user.
func (p *PushSender) Subscribe(ctx context.Context, userID primitive.ObjectID, sub webpush.Subscription) error {
	_, err := p.subs.UpdateOne(
		ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"sub": sub}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (p *PushSender) SendActivity(activity models.Activity) {
	if p.vapidPrivateKey == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var sub PushSubscription
	err := p.subs.FindOne(ctx, bson.M{"userId": activity.NotifiedUserID}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return
	}
	if err != nil {
		log.Printf("[Push] Failed to find subscription: %v", err)
		return
	}

	payload, _ := json.Marshal(map[string]string{
		"title": pushTitle(activity.Type),
		"tag":   activity.ID.Hex(),
	})

	resp, err := webpush.SendNotification(payload, &sub.Sub, &webpush.Options{
		Subscriber:      p.subscriber,
		VAPIDPublicKey:  p.vapidPublicKey,
		VAPIDPrivateKey: p.vapidPrivateKey,
		TTL:             30,
	})
	if err != nil {
		log.Printf("[Push] Failed to send push: %v", err)
		return
	}
	resp.Body.Close()
}

func pushTitle(activityType string) string {
	switch activityType {
	case models.ActivityLike:
		return "Someone liked your post"
	case models.ActivityComment:
		return "New comment on your post"
	case models.ActivityFollow:
		return "You have a new follower"
	case models.ActivityMention:
		return "You were mentioned"
	default:
		return "New activity"
	}
}
