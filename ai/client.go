package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// Verdict is a moderation decision for a piece of user text.
type Verdict struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Inference is the full surface this backend needs from a generative model
// provider: a moderation verdict, a typed JSON generation, and batch
// embeddings. Callers own their fallback behavior; implementations just
// return errors.
type Inference interface {
	Moderate(ctx context.Context, text string) (Verdict, error)
	GenerateJSON(ctx context.Context, prompt string, out interface{}) error
	Embed(ctx context.Context, inputs []string) ([][]float32, error)
}

type OpenAI struct {
	client         *openai.Client
	model          string
	embeddingModel openai.EmbeddingModel
}

func NewOpenAI(apiKey string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("no OpenAI API key configured")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
		log.Println("OPENAI_MODEL not set, defaulting to gpt-4o-mini")
	}
	return &OpenAI{
		client:         openai.NewClient(apiKey),
		model:          model,
		embeddingModel: openai.SmallEmbedding3,
	}, nil
}

func (o *OpenAI) Moderate(ctx context.Context, text string) (Verdict, error) {
	resp, err := o.client.Moderations(ctx, openai.ModerationRequest{
		Input: text,
		Model: openai.ModerationOmniLatest,
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("moderation call failed: %w", err)
	}
	if len(resp.Results) == 0 {
		return Verdict{}, fmt.Errorf("moderation returned no results")
	}
	r := resp.Results[0]
	if !r.Flagged {
		return Verdict{Allowed: true}, nil
	}
	return Verdict{Allowed: false, Reason: flaggedReason(r)}, nil
}

func flaggedReason(r openai.Result) string {
	switch {
	case r.Categories.Hate:
		return "hate"
	case r.Categories.Harassment:
		return "harassment"
	case r.Categories.SelfHarm:
		return "self-harm"
	case r.Categories.Sexual:
		return "sexual"
	case r.Categories.Violence:
		return "violence"
	default:
		return "flagged"
	}
}

// GenerateJSON asks the model for a JSON object and decodes it into out.
func (o *OpenAI) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "Respond with a single JSON object and nothing else."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return fmt.Errorf("completion call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("completion returned no choices")
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), out); err != nil {
		return fmt.Errorf("completion returned invalid JSON: %w", err)
	}
	return nil
}

func (o *OpenAI) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	resp, err := o.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: inputs,
		Model: o.embeddingModel,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding call failed: %w", err)
	}
	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("embedding returned %d vectors for %d inputs", len(resp.Data), len(inputs))
	}
	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}
