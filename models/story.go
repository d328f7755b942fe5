package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Story struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID   `bson:"userId" json:"userId"`
	Type       string               `bson:"type" json:"type"` // image, video
	ContentURL string               `bson:"contentUrl" json:"contentUrl"`
	ViewedBy   []primitive.ObjectID `bson:"viewedBy" json:"viewedBy"`
	CreatedAt  int64                `bson:"createdAt" json:"createdAt"`
	User       *UserSnapshot        `bson:"-" json:"user,omitempty"` // Populated in response only
}
