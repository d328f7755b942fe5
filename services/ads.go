package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"vibespace/ai"
	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdService struct {
	ads   *mongo.Collection
	posts *mongo.Collection
	ai    ai.Inference
}

func NewAdService(ads, posts *mongo.Collection, inference ai.Inference) *AdService {
	return &AdService{ads: ads, posts: posts, ai: inference}
}

// SelectForUser picks one inventory ad to interleave into the user's feed,
// matched against their recent caption texts. Returns nil when the inventory
// is empty.
func (s *AdService) SelectForUser(ctx context.Context, userID primitive.ObjectID) (*models.Ad, error) {
	cursor, err := s.ads.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inventory []models.Ad
	if err := cursor.All(ctx, &inventory); err != nil {
		return nil, err
	}
	if len(inventory) == 0 {
		return nil, nil
	}

	captions, err := s.recentCaptions(ctx, userID, 10)
	if err != nil {
		log.Printf("[SelectAd] Failed to load captions: %v", err)
		captions = nil
	}

	ad := ChooseAd(ctx, s.ai, inventory, captions)
	return &ad, nil
}

// ChooseAd asks the model to rank the inventory against the captions. When
// the model call fails or picks an unknown id, the fallback is an explicit
// uniform random pick — availability over precision.
func ChooseAd(ctx context.Context, inference ai.Inference, inventory []models.Ad, captions []string) models.Ad {
	var pick struct {
		AdID string `json:"adId"`
	}
	err := inference.GenerateJSON(ctx, adPrompt(inventory, captions), &pick)
	if err == nil {
		for _, ad := range inventory {
			if ad.ID.Hex() == pick.AdID {
				return ad
			}
		}
		err = fmt.Errorf("model picked unknown ad id %q", pick.AdID)
	}

	log.Printf("[SelectAd] Falling back to random pick: %v", err)
	return inventory[rand.Intn(len(inventory))]
}

func adPrompt(inventory []models.Ad, captions []string) string {
	var b strings.Builder
	b.WriteString("Pick the ad most relevant to this user's recent posts. Reply as {\"adId\": \"...\"}.\n\nAds:\n")
	for _, ad := range inventory {
		fmt.Fprintf(&b, "- id=%s title=%q keywords=%s\n", ad.ID.Hex(), ad.Title, strings.Join(ad.Keywords, ","))
	}
	b.WriteString("\nRecent captions:\n")
	for _, c := range captions {
		fmt.Fprintf(&b, "- %q\n", c)
	}
	return b.String()
}

func (s *AdService) recentCaptions(ctx context.Context, userID primitive.ObjectID, limit int64) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := s.posts.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	captions := make([]string, 0, len(posts))
	for _, p := range posts {
		if p.Caption != "" {
			captions = append(captions, p.Caption)
		}
	}
	return captions, nil
}
