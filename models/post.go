package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	PostTypeImage = "image"
	PostTypeVideo = "video"

	PostStatusProcessing = "processing"
	PostStatusPublished  = "published"
	PostStatusFailed     = "failed"
)

// PostTag is an image region annotation pointing at a user.
type PostTag struct {
	Username string  `bson:"username" json:"username"`
	X        float64 `bson:"x" json:"x"`
	Y        float64 `bson:"y" json:"y"`
}

type Post struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID        primitive.ObjectID   `bson:"userId" json:"userId"`
	Type          string               `bson:"type" json:"type"` // image, video
	ContentURL    string               `bson:"contentUrl" json:"contentUrl"`
	Caption       string               `bson:"caption" json:"caption"`
	Hashtags      []string             `bson:"hashtags" json:"hashtags"`
	Tags          []PostTag            `bson:"tags,omitempty" json:"tags,omitempty"`
	Collaborators []primitive.ObjectID `bson:"collaborators,omitempty" json:"collaborators,omitempty"`
	Likes         int                  `bson:"likes" json:"likes"`
	LikedBy       []primitive.ObjectID `bson:"likedBy" json:"likedBy"`
	CommentCount  int                  `bson:"commentCount" json:"commentCount"`
	IsSponsored   bool                 `bson:"isSponsored" json:"isSponsored"`
	Status        string               `bson:"status" json:"status"` // processing, published, failed
	CreatedAt     int64                `bson:"createdAt" json:"createdAt"`
	User          *UserSnapshot        `bson:"-" json:"user,omitempty"` // Populated in response only
}

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	User      UserSnapshot       `bson:"user" json:"user"` // snapshot at comment time, not a live reference
	Text      string             `bson:"text" json:"text"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
