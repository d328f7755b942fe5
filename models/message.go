package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChatID    primitive.ObjectID `bson:"chatId" json:"chatId"`
	SenderID  primitive.ObjectID `bson:"senderId" json:"senderId"`
	Type      string             `bson:"type" json:"type"` // text, image, video
	Content   string             `bson:"content" json:"content"`
	MediaURL  string             `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	ReadBy    map[string]int64   `bson:"readBy" json:"readBy"` // reader id (hex) -> read unix time
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

// SeenByAll reports whether every participant other than the sender has a read
// receipt for the message.
func (m Message) SeenByAll(participants []primitive.ObjectID) bool {
	for _, p := range participants {
		if p == m.SenderID {
			continue
		}
		if _, ok := m.ReadBy[p.Hex()]; !ok {
			return false
		}
	}
	return true
}
