package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"vibespace/ai"
	"vibespace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const fallbackVibe = "Just sharing good moments."

// AssistService wraps the generative collaborator for the content-assist
// surfaces. Every method has an explicit fallback: the primary user action
// must never fail because the model is down.
type AssistService struct {
	posts *mongo.Collection
	ai    ai.Inference
}

func NewAssistService(posts *mongo.Collection, inference ai.Inference) *AssistService {
	return &AssistService{posts: posts, ai: inference}
}

// CheckContent gates post/comment text through moderation. The gate fails
// open: if the moderation call errors, the content is allowed and the failure
// is logged for offline review. Availability over strict enforcement.
func (s *AssistService) CheckContent(ctx context.Context, text string) ai.Verdict {
	verdict, err := s.ai.Moderate(ctx, text)
	if err != nil {
		log.Printf("[Moderation] Call failed, failing open: %v", err)
		return ai.Verdict{Allowed: true, Reason: "moderation unavailable"}
	}
	return verdict
}

// SuggestCaptions returns up to a handful of caption ideas for a topic.
// Model failure degrades to no suggestions.
func (s *AssistService) SuggestCaptions(ctx context.Context, topic string) []string {
	var out struct {
		Captions []string `json:"captions"`
	}
	prompt := fmt.Sprintf("Suggest 3 short social media captions about %q as {\"captions\": [...]}.", topic)
	if err := s.ai.GenerateJSON(ctx, prompt, &out); err != nil {
		log.Printf("[SuggestCaptions] Call failed: %v", err)
		return []string{}
	}
	return out.Captions
}

// SuggestHashtags returns hashtag ideas for a caption, without the # prefix.
func (s *AssistService) SuggestHashtags(ctx context.Context, caption string) []string {
	var out struct {
		Hashtags []string `json:"hashtags"`
	}
	prompt := fmt.Sprintf("Suggest 5 hashtags (no # prefix) for this caption: %q. Reply as {\"hashtags\": [...]}.", caption)
	if err := s.ai.GenerateJSON(ctx, prompt, &out); err != nil {
		log.Printf("[SuggestHashtags] Call failed: %v", err)
		return []string{}
	}
	hashtags := make([]string, 0, len(out.Hashtags))
	for _, h := range out.Hashtags {
		hashtags = append(hashtags, strings.TrimPrefix(h, "#"))
	}
	return hashtags
}

// VibeSummary condenses a user's recent captions into a one-line profile
// vibe. Model failure degrades to a canned line.
func (s *AssistService) VibeSummary(ctx context.Context, userID primitive.ObjectID) string {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(10)
	cursor, err := s.posts.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		log.Printf("[VibeSummary] Failed to load posts: %v", err)
		return fallbackVibe
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		log.Printf("[VibeSummary] Failed to decode posts: %v", err)
		return fallbackVibe
	}

	var captions []string
	for _, p := range posts {
		if p.Caption != "" {
			captions = append(captions, p.Caption)
		}
	}
	if len(captions) == 0 {
		return fallbackVibe
	}

	var out struct {
		Vibe string `json:"vibe"`
	}
	prompt := fmt.Sprintf("Summarize this user's vibe in one short sentence as {\"vibe\": \"...\"} from these captions:\n- %s",
		strings.Join(captions, "\n- "))
	if err := s.ai.GenerateJSON(ctx, prompt, &out); err != nil || out.Vibe == "" {
		log.Printf("[VibeSummary] Call failed: %v", err)
		return fallbackVibe
	}
	return out.Vibe
}
