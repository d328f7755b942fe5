package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ActivityLike    = "like"
	ActivityComment = "comment"
	ActivityFollow  = "follow"
	ActivityMention = "mention"
)

type Activity struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type           string              `bson:"type" json:"type"` // like, comment, follow, mention
	ActorID        primitive.ObjectID  `bson:"actorId" json:"actorId"`
	NotifiedUserID primitive.ObjectID  `bson:"notifiedUserId" json:"notifiedUserId"`
	PostID         *primitive.ObjectID `bson:"postId,omitempty" json:"postId,omitempty"`
	Seen           bool                `bson:"seen" json:"seen"`
	CreatedAt      int64               `bson:"createdAt" json:"createdAt"`
}

// ActivityView is an activity joined against the current actor profile and,
// when the record references a post, a thumbnail projection of that post.
type ActivityView struct {
	Activity `bson:",inline"`
	Actor    *UserSnapshot  `bson:"actor,omitempty" json:"actor,omitempty"`
	Post     *PostThumbnail `bson:"post,omitempty" json:"post,omitempty"`
}

type PostThumbnail struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	ContentURL string             `bson:"contentUrl" json:"contentUrl"`
	Type       string             `bson:"type" json:"type"`
}
