package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name       string               `bson:"name" json:"name"`
	Username   string               `bson:"username" json:"username"`
	Email      string               `bson:"email" json:"email"`
	Avatar     string               `bson:"avatar" json:"avatar"`
	Bio        string               `bson:"bio" json:"bio"`
	Followers  []primitive.ObjectID `bson:"followers" json:"followers"`
	Following  []primitive.ObjectID `bson:"following" json:"following"`
	SavedPosts []primitive.ObjectID `bson:"savedPosts" json:"savedPosts"`
	IsPrivate  bool                 `bson:"isPrivate" json:"isPrivate"`
	CreatedAt  int64                `bson:"createdAt" json:"createdAt"`
}

// UserSnapshot is the denormalized author projection embedded in comments and
// returned alongside posts. Comments keep the snapshot taken at comment time;
// everything else resolves the current profile.
type UserSnapshot struct {
	ID       primitive.ObjectID `bson:"id" json:"id"`
	Username string             `bson:"username" json:"username"`
	Name     string             `bson:"name" json:"name"`
	Avatar   string             `bson:"avatar" json:"avatar"`
}

func Snapshot(u User) UserSnapshot {
	return UserSnapshot{ID: u.ID, Username: u.Username, Name: u.Name, Avatar: u.Avatar}
}
