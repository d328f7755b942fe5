package services

import (
	"context"
	"log"
	"time"

	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	feedLimit         = 50
	followingFeedDays = 7
	feedWindowSeconds = followingFeedDays * 24 * 60 * 60
)

// Feed is one assembled feed response: ranked posts plus at most one
// interleaved ad.
type Feed struct {
	Posts []models.Post `json:"posts"`
	Ad    *models.Ad    `json:"ad,omitempty"`
}

type FeedService struct {
	posts *mongo.Collection
	users *mongo.Collection
	adSvc *AdService
}

func NewFeedService(posts, users *mongo.Collection, adSvc *AdService) *FeedService {
	return &FeedService{posts: posts, users: users, adSvc: adSvc}
}

// Following assembles the chronological feed: published posts from the
// trailing 7-day window, sponsored posts moved to the front, then a stable
// relevance sort, truncated to 50.
func (s *FeedService) Following(ctx context.Context, userID primitive.ObjectID) (Feed, error) {
	cutoff := time.Now().Unix() - feedWindowSeconds

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.posts.Find(ctx, bson.M{
		"status":    models.PostStatusPublished,
		"createdAt": bson.M{"$gte": cutoff},
	}, opts)
	if err != nil {
		return Feed{}, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return Feed{}, err
	}

	ranked := RankChronological(posts, feedLimit)
	newUserCache(s.users).decoratePosts(ctx, ranked)

	return Feed{Posts: ranked, Ad: s.pickAd(ctx, userID)}, nil
}

// ForYou assembles the one-hop collaborative-filtering feed: posts liked by
// the users who share a like with the requester, newest first. A user with no
// likes gets an empty feed — there is deliberately no trending fallback.
func (s *FeedService) ForYou(ctx context.Context, userID primitive.ObjectID) (Feed, error) {
	mine, err := s.findPosts(ctx, bson.M{"likedBy": userID})
	if err != nil {
		return Feed{}, err
	}
	if len(mine) == 0 {
		return Feed{Posts: []models.Post{}}, nil
	}

	similar := SimilarLikers(mine, userID)
	if len(similar) == 0 {
		return Feed{Posts: []models.Post{}}, nil
	}

	recs, err := s.findPosts(ctx, bson.M{
		"likedBy": bson.M{"$in": similar},
		"status":  models.PostStatusPublished,
	})
	if err != nil {
		return Feed{}, err
	}

	recs = DedupeByID(recs)
	SortByRecency(recs)
	if len(recs) > feedLimit {
		recs = recs[:feedLimit]
	}
	newUserCache(s.users).decoratePosts(ctx, recs)

	return Feed{Posts: recs, Ad: s.pickAd(ctx, userID)}, nil
}

// UserPosts lists one author's published posts, newest first.
func (s *FeedService) UserPosts(ctx context.Context, authorID primitive.ObjectID) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.posts.Find(ctx, bson.M{
		"userId": authorID,
		"status": models.PostStatusPublished,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	newUserCache(s.users).decoratePosts(ctx, posts)
	return posts, nil
}

func (s *FeedService) pickAd(ctx context.Context, userID primitive.ObjectID) *models.Ad {
	if s.adSvc == nil {
		return nil
	}
	ad, err := s.adSvc.SelectForUser(ctx, userID)
	if err != nil {
		log.Printf("[Feed] Ad selection failed: %v", err)
		return nil
	}
	return ad
}

func (s *FeedService) findPosts(ctx context.Context, filter bson.M) ([]models.Post, error) {
	cursor, err := s.posts.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
