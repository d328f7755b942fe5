package services

import (
	"context"
	"log"

	"vibespace/database"
	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService struct {
	users    *mongo.Collection
	activity *ActivityService
}

func NewUserService(users *mongo.Collection, activity *ActivityService) *UserService {
	return &UserService{users: users, activity: activity}
}

func (s *UserService) Get(ctx context.Context, userID primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ToggleFollow flips the follow edge from userID to targetID and reports the
// new state. Both user documents change inside one transaction so the
// followers/following mirror can never be left half-applied by a crash
// between the two writes.
func (s *UserService) ToggleFollow(ctx context.Context, userID, targetID primitive.ObjectID) (bool, error) {
	if userID == targetID {
		return false, ErrSelfFollow
	}

	result, err := database.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var target models.User
		err := s.users.FindOne(sc, bson.M{"_id": targetID}).Decode(&target)
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		if err != nil {
			return nil, err
		}

		following := false
		for _, id := range target.Followers {
			if id == userID {
				following = true
				break
			}
		}

		userUpdate, targetUpdate := followUpdates(following, userID, targetID)

		userResult, err := s.users.UpdateOne(sc, bson.M{"_id": userID}, userUpdate)
		if err != nil {
			return nil, err
		}
		if userResult.MatchedCount == 0 {
			return nil, ErrUserNotFound
		}
		if _, err := s.users.UpdateOne(sc, bson.M{"_id": targetID}, targetUpdate); err != nil {
			return nil, err
		}
		return !following, nil
	})
	if err != nil {
		return false, err
	}

	isFollowing := result.(bool)
	if isFollowing {
		if err := s.activity.Emit(ctx, models.ActivityFollow, userID, targetID, nil); err != nil {
			log.Printf("[ToggleFollow] Failed to emit activity: %v", err)
		}
	}
	return isFollowing, nil
}

// followUpdates builds the paired updates for both sides of the follow edge.
// user.following and target.followers always change together, in the same
// direction.
func followUpdates(following bool, userID, targetID primitive.ObjectID) (userUpdate, targetUpdate bson.M) {
	if following {
		return bson.M{"$pull": bson.M{"following": targetID}},
			bson.M{"$pull": bson.M{"followers": userID}}
	}
	return bson.M{"$addToSet": bson.M{"following": targetID}},
		bson.M{"$addToSet": bson.M{"followers": userID}}
}

// ToggleSave flips a post in the user's saved set.
func (s *UserService) ToggleSave(ctx context.Context, userID, postID primitive.ObjectID) (bool, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return false, ErrUserNotFound
	}
	if err != nil {
		return false, err
	}

	saved := false
	for _, id := range user.SavedPosts {
		if id == postID {
			saved = true
			break
		}
	}

	var update bson.M
	if saved {
		update = bson.M{"$pull": bson.M{"savedPosts": postID}}
	} else {
		update = bson.M{"$addToSet": bson.M{"savedPosts": postID}}
	}
	if _, err := s.users.UpdateOne(ctx, bson.M{"_id": userID}, update); err != nil {
		return false, err
	}
	return !saved, nil
}

type UpdateProfileInput struct {
	Name      *string
	Avatar    *string
	Bio       *string
	IsPrivate *bool
}

// UpdateProfile writes only the fields the caller provided; nil fields are
// left untouched.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input UpdateProfileInput) error {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Avatar != nil {
		set["avatar"] = *input.Avatar
	}
	if input.Bio != nil {
		set["bio"] = *input.Bio
	}
	if input.IsPrivate != nil {
		set["isPrivate"] = *input.IsPrivate
	}
	if len(set) == 0 {
		return nil
	}

	result, err := s.users.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
