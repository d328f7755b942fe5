package services

import (
	"context"
	"log"
	"time"

	"vibespace/database"
	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostService struct {
	posts    *mongo.Collection
	comments *mongo.Collection
	users    *mongo.Collection
	activity *ActivityService
}

func NewPostService(posts, comments, users *mongo.Collection, activity *ActivityService) *PostService {
	return &PostService{posts: posts, comments: comments, users: users, activity: activity}
}

type CreatePostInput struct {
	Type          string
	Caption       string
	Hashtags      []string
	Tags          []models.PostTag
	Collaborators []primitive.ObjectID
	IsSponsored   bool
}

// Create inserts the post in processing status with an empty content URL.
// The caller uploads media afterwards and attaches the URL via Update, so the
// client can navigate away as soon as the record exists. Caption mentions are
// resolved and notified here, deduplicated per mentioned user.
func (s *PostService) Create(ctx context.Context, userID primitive.ObjectID, input CreatePostInput) (models.Post, error) {
	if input.Type != models.PostTypeImage && input.Type != models.PostTypeVideo {
		return models.Post{}, ErrInvalidType
	}

	count, err := s.users.CountDocuments(ctx, bson.M{"_id": userID})
	if err != nil {
		return models.Post{}, err
	}
	if count == 0 {
		return models.Post{}, ErrUserNotFound
	}

	post := models.Post{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		Type:          input.Type,
		ContentURL:    "",
		Caption:       input.Caption,
		Hashtags:      input.Hashtags,
		Tags:          input.Tags,
		Collaborators: input.Collaborators,
		Likes:         0,
		LikedBy:       []primitive.ObjectID{},
		CommentCount:  0,
		IsSponsored:   input.IsSponsored,
		Status:        models.PostStatusProcessing,
		CreatedAt:     time.Now().Unix(),
	}

	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return models.Post{}, err
	}

	s.notifyMentions(ctx, input.Caption, userID, post.ID)
	return post, nil
}

type UpdatePostInput struct {
	Caption    *string
	ContentURL *string
	Status     *string
}

// Update is a plain field merge. It attaches the uploaded content URL
// (processing -> published) or marks the upload failed.
func (s *PostService) Update(ctx context.Context, postID primitive.ObjectID, input UpdatePostInput) error {
	set := bson.M{}
	if input.Caption != nil {
		set["caption"] = *input.Caption
	}
	if input.ContentURL != nil {
		set["contentUrl"] = *input.ContentURL
	}
	if input.Status != nil {
		set["status"] = *input.Status
	}
	if len(set) == 0 {
		return nil
	}

	result, err := s.posts.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrPostNotFound
	}
	return nil
}

// Delete removes the post and its comment documents. Stored media cleanup is
// the storage collaborator's job.
func (s *PostService) Delete(ctx context.Context, postID primitive.ObjectID) error {
	result, err := s.posts.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrPostNotFound
	}
	if _, err := s.comments.DeleteMany(ctx, bson.M{"postId": postID}); err != nil {
		log.Printf("[DeletePost] Failed to delete comments for %s: %v", postID.Hex(), err)
	}
	return nil
}

func (s *PostService) Get(ctx context.Context, postID primitive.ObjectID) (models.Post, error) {
	var post models.Post
	err := s.posts.FindOne(ctx, bson.M{"_id": postID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// ToggleLike flips the caller's like on a post and reports the new state.
// The membership check and the paired likes/likedBy mutation run inside one
// transaction, so concurrent toggles from the same user cannot double-count
// and likes always equals the size of likedBy. The like activity history is
// retained after an unlike.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (bool, error) {
	var ownerID primitive.ObjectID

	result, err := database.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var post models.Post
		err := s.posts.FindOne(sc, bson.M{"_id": postID}).Decode(&post)
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		if err != nil {
			return nil, err
		}
		ownerID = post.UserID

		liked := false
		for _, id := range post.LikedBy {
			if id == userID {
				liked = true
				break
			}
		}

		if _, err := s.posts.UpdateOne(sc, bson.M{"_id": post.ID}, likeUpdate(liked, userID)); err != nil {
			return nil, err
		}
		return !liked, nil
	})
	if err != nil {
		return false, err
	}

	isLiked := result.(bool)
	if isLiked {
		if err := s.activity.Emit(ctx, models.ActivityLike, userID, ownerID, &postID); err != nil {
			log.Printf("[ToggleLike] Failed to emit activity: %v", err)
		}
	}
	return isLiked, nil
}

// likeUpdate builds the single update that flips a like. The counter change
// and the membership change always travel together, so likes stays equal to
// the size of likedBy.
func likeUpdate(liked bool, userID primitive.ObjectID) bson.M {
	if liked {
		return bson.M{
			"$inc":  bson.M{"likes": -1},
			"$pull": bson.M{"likedBy": userID},
		}
	}
	return bson.M{
		"$inc":      bson.M{"likes": 1},
		"$addToSet": bson.M{"likedBy": userID},
	}
}

// AddComment appends a comment carrying a snapshot of the commenting user
// taken now; later profile edits do not rewrite comment history. The insert
// and the post's commentCount increment share a transaction. The owner
// notification and mention notifications run after it and are eventually
// consistent with the comment write.
func (s *PostService) AddComment(ctx context.Context, postID, userID primitive.ObjectID, text string) (models.Comment, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.Comment{}, ErrUserNotFound
	}
	if err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:        primitive.NewObjectID(),
		PostID:    postID,
		UserID:    userID,
		User:      models.Snapshot(user),
		Text:      text,
		CreatedAt: time.Now().Unix(),
	}

	var ownerID primitive.ObjectID
	_, err = database.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var post models.Post
		err := s.posts.FindOne(sc, bson.M{"_id": postID}).Decode(&post)
		if err == mongo.ErrNoDocuments {
			return nil, ErrPostNotFound
		}
		if err != nil {
			return nil, err
		}
		ownerID = post.UserID

		if _, err := s.comments.InsertOne(sc, comment); err != nil {
			return nil, err
		}
		if _, err := s.posts.UpdateOne(sc, bson.M{"_id": postID}, bson.M{"$inc": bson.M{"commentCount": 1}}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return models.Comment{}, err
	}

	if err := s.activity.Emit(ctx, models.ActivityComment, userID, ownerID, &postID); err != nil {
		log.Printf("[AddComment] Failed to emit activity: %v", err)
	}
	s.notifyMentions(ctx, text, userID, postID)

	return comment, nil
}

// ListComments returns a post's comments oldest first.
func (s *PostService) ListComments(ctx context.Context, postID primitive.ObjectID, limit int64) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := s.comments.Find(ctx, bson.M{"postId": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// notifyMentions resolves @usernames in text and emits one mention activity
// per resolvable, non-self user. Unresolvable mentions are skipped silently.
func (s *PostService) notifyMentions(ctx context.Context, text string, actorID, postID primitive.ObjectID) {
	for _, username := range ExtractMentions(text) {
		var mentioned models.User
		err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&mentioned)
		if err == mongo.ErrNoDocuments {
			continue
		}
		if err != nil {
			log.Printf("[Mentions] Lookup failed for %q: %v", username, err)
			continue
		}
		if err := s.activity.Emit(ctx, models.ActivityMention, actorID, mentioned.ID, &postID); err != nil {
			log.Printf("[Mentions] Failed to emit activity for %q: %v", username, err)
		}
	}
}
