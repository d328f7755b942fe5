package services

import (
	"context"
	"time"

	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const storyWindowSeconds = 24 * 60 * 60

type StoryService struct {
	stories *mongo.Collection
	users   *mongo.Collection
}

func NewStoryService(stories, users *mongo.Collection) *StoryService {
	return &StoryService{stories: stories, users: users}
}

func (s *StoryService) Create(ctx context.Context, userID primitive.ObjectID, storyType, contentURL string) (models.Story, error) {
	if storyType != models.PostTypeImage && storyType != models.PostTypeVideo {
		return models.Story{}, ErrInvalidType
	}

	story := models.Story{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Type:       storyType,
		ContentURL: contentURL,
		ViewedBy:   []primitive.ObjectID{},
		CreatedAt:  time.Now().Unix(),
	}
	if _, err := s.stories.InsertOne(ctx, story); err != nil {
		return models.Story{}, err
	}
	return story, nil
}

// ListActive returns stories from the trailing 24-hour window, newest first.
func (s *StoryService) ListActive(ctx context.Context) ([]models.Story, error) {
	cutoff := time.Now().Unix() - storyWindowSeconds

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.stories.Find(ctx, bson.M{"createdAt": bson.M{"$gte": cutoff}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stories := []models.Story{}
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	newUserCache(s.users).decorateStories(ctx, stories)
	return stories, nil
}

// MarkViewed records a viewer once per story.
func (s *StoryService) MarkViewed(ctx context.Context, storyID, viewerID primitive.ObjectID) error {
	result, err := s.stories.UpdateOne(
		ctx,
		bson.M{"_id": storyID},
		bson.M{"$addToSet": bson.M{"viewedBy": viewerID}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}
