package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Ad is a static inventory entry. Keywords are matched against the user's
// recent caption texts when picking which ad to interleave into a feed.
type Ad struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	ImageURL string             `bson:"imageUrl" json:"imageUrl"`
	LinkURL  string             `bson:"linkUrl" json:"linkUrl"`
	Keywords []string           `bson:"keywords" json:"keywords"`
}
