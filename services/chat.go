package services

import (
	"context"
	"log"
	"time"

	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatService struct {
	chats    *mongo.Collection
	messages *mongo.Collection
	notifier Notifier
}

func NewChatService(chats, messages *mongo.Collection, notifier Notifier) *ChatService {
	return &ChatService{chats: chats, messages: messages, notifier: notifier}
}

// CreateDirect returns the existing direct chat between the two users, or
// creates it.
func (s *ChatService) CreateDirect(ctx context.Context, userID, otherID primitive.ObjectID) (models.Chat, error) {
	if userID == otherID {
		return models.Chat{}, ErrNotParticipant
	}

	var existing models.Chat
	err := s.chats.FindOne(ctx, bson.M{
		"isGroup":      false,
		"participants": bson.M{"$all": bson.A{userID, otherID}, "$size": 2},
	}).Decode(&existing)
	if err == nil {
		return existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.Chat{}, err
	}

	chat := models.Chat{
		ID:           primitive.NewObjectID(),
		Participants: []primitive.ObjectID{userID, otherID},
		IsGroup:      false,
		CreatedAt:    time.Now().Unix(),
	}
	if _, err := s.chats.InsertOne(ctx, chat); err != nil {
		return models.Chat{}, err
	}
	return chat, nil
}

// CreateGroup rejects an empty name or missing participants before any write.
func (s *ChatService) CreateGroup(ctx context.Context, creatorID primitive.ObjectID, name string, participantIDs []primitive.ObjectID) (models.Chat, error) {
	if name == "" || len(participantIDs) == 0 {
		return models.Chat{}, ErrEmptyGroup
	}

	participants := []primitive.ObjectID{creatorID}
	for _, id := range participantIDs {
		if id != creatorID {
			participants = append(participants, id)
		}
	}
	if len(participants) < 2 {
		return models.Chat{}, ErrEmptyGroup
	}

	chat := models.Chat{
		ID:           primitive.NewObjectID(),
		Participants: participants,
		IsGroup:      true,
		Name:         name,
		CreatedAt:    time.Now().Unix(),
	}
	if _, err := s.chats.InsertOne(ctx, chat); err != nil {
		return models.Chat{}, err
	}
	return chat, nil
}

// ListForUser returns the user's chats, most recently active first.
func (s *ChatService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastMessageAt", Value: -1}})
	cursor, err := s.chats.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	chats := []models.Chat{}
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// requireChat verifies that the user participates in the chat.
func (s *ChatService) requireChat(ctx context.Context, chatID, userID primitive.ObjectID) (models.Chat, error) {
	var chat models.Chat
	err := s.chats.FindOne(ctx, bson.M{"_id": chatID, "participants": userID}).Decode(&chat)
	if err == mongo.ErrNoDocuments {
		return models.Chat{}, ErrChatNotFound
	}
	if err != nil {
		return models.Chat{}, err
	}
	return chat, nil
}

type SendMessageInput struct {
	Type     string
	Content  string
	MediaURL string
}

// SendMessage stores the message, refreshes the chat's denormalized
// lastMessage cache, and fans the message out to the other participants'
// live connections.
func (s *ChatService) SendMessage(ctx context.Context, chatID, senderID primitive.ObjectID, input SendMessageInput) (models.Message, error) {
	chat, err := s.requireChat(ctx, chatID, senderID)
	if err != nil {
		return models.Message{}, err
	}

	if input.Type == "" {
		input.Type = "text"
	}

	now := time.Now().Unix()
	message := models.Message{
		ID:        primitive.NewObjectID(),
		ChatID:    chatID,
		SenderID:  senderID,
		Type:      input.Type,
		Content:   input.Content,
		MediaURL:  input.MediaURL,
		ReadBy:    map[string]int64{senderID.Hex(): now},
		CreatedAt: now,
	}

	if _, err := s.messages.InsertOne(ctx, message); err != nil {
		return models.Message{}, err
	}

	// Not critical – message was already saved.
	_, err = s.chats.UpdateOne(ctx, bson.M{"_id": chatID}, bson.M{
		"$set": bson.M{
			"lastMessage":   previewText(message),
			"lastMessageAt": now,
		},
	})
	if err != nil {
		log.Printf("[SendMessage] Update chat lastMessage error: %v", err)
	}

	s.fanOut(chat, message)
	return message, nil
}

func previewText(m models.Message) string {
	if m.Content != "" {
		return m.Content
	}
	switch m.Type {
	case "image":
		return "[Photo]"
	case "video":
		return "[Video]"
	default:
		return ""
	}
}

func (s *ChatService) fanOut(chat models.Chat, message models.Message) {
	if s.notifier == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[SendMessage] Panic in fan-out: %v", r)
			}
		}()
		for _, participantID := range chat.Participants {
			if participantID == message.SenderID {
				continue
			}
			s.notifier.SendToUser(participantID.Hex(), "message", message)
		}
	}()
}

// ListMessages returns the chat's messages oldest first.
func (s *ChatService) ListMessages(ctx context.Context, chatID, userID primitive.ObjectID, limit int64) ([]models.Message, error) {
	if _, err := s.requireChat(ctx, chatID, userID); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := s.messages.Find(ctx, bson.M{"chatId": chatID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead stamps a read receipt on every message from other senders that the
// user has not read yet — one batched write, not one round trip per message.
func (s *ChatService) MarkRead(ctx context.Context, chatID, userID primitive.ObjectID) (int64, error) {
	if _, err := s.requireChat(ctx, chatID, userID); err != nil {
		return 0, err
	}

	field := "readBy." + userID.Hex()
	result, err := s.messages.UpdateMany(
		ctx,
		bson.M{
			"chatId":   chatID,
			"senderId": bson.M{"$ne": userID},
			field:      bson.M{"$exists": false},
		},
		bson.M{"$set": bson.M{field: time.Now().Unix()}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
