package services

import (
	"context"
	"testing"

	"vibespace/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateDirectRejectsSelfChat(t *testing.T) {
	svc := NewChatService(nil, nil, nil)
	me := primitive.NewObjectID()

	_, err := svc.CreateDirect(context.Background(), me, me)

	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestCreateGroupRejectsEmptyName(t *testing.T) {
	svc := NewChatService(nil, nil, nil)

	_, err := svc.CreateGroup(context.Background(), primitive.NewObjectID(), "", []primitive.ObjectID{primitive.NewObjectID()})

	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestCreateGroupRejectsNoParticipants(t *testing.T) {
	svc := NewChatService(nil, nil, nil)

	_, err := svc.CreateGroup(context.Background(), primitive.NewObjectID(), "weekend crew", nil)

	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestCreateGroupRejectsCreatorOnly(t *testing.T) {
	svc := NewChatService(nil, nil, nil)
	creator := primitive.NewObjectID()

	// The creator listing only themselves is not a group.
	_, err := svc.CreateGroup(context.Background(), creator, "just me", []primitive.ObjectID{creator})

	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestPreviewTextPrefersContent(t *testing.T) {
	assert.Equal(t, "see you there", previewText(models.Message{Type: "image", Content: "see you there"}))
}

func TestPreviewTextMediaPlaceholders(t *testing.T) {
	assert.Equal(t, "[Photo]", previewText(models.Message{Type: "image"}))
	assert.Equal(t, "[Video]", previewText(models.Message{Type: "video"}))
	assert.Equal(t, "", previewText(models.Message{Type: "text"}))
}
