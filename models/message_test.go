package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSeenByAllIgnoresSender(t *testing.T) {
	sender := primitive.NewObjectID()
	reader := primitive.NewObjectID()
	participants := []primitive.ObjectID{sender, reader}

	m := Message{
		SenderID: sender,
		ReadBy:   map[string]int64{reader.Hex(): 1700000000},
	}

	assert.True(t, m.SeenByAll(participants))
}

func TestSeenByAllFalseWhileAnyReceiptMissing(t *testing.T) {
	sender := primitive.NewObjectID()
	read := primitive.NewObjectID()
	unread := primitive.NewObjectID()
	participants := []primitive.ObjectID{sender, read, unread}

	m := Message{
		SenderID: sender,
		ReadBy:   map[string]int64{read.Hex(): 1700000000},
	}

	assert.False(t, m.SeenByAll(participants))
}

func TestSeenByAllWithNoReceipts(t *testing.T) {
	sender := primitive.NewObjectID()

	m := Message{SenderID: sender}

	// Only the sender in the chat: trivially seen.
	assert.True(t, m.SeenByAll([]primitive.ObjectID{sender}))
	assert.False(t, m.SeenByAll([]primitive.ObjectID{sender, primitive.NewObjectID()}))
}
