package services

import (
	"context"
	"testing"

	"vibespace/ai"

	"github.com/stretchr/testify/assert"
)

func TestCheckContentFailsOpen(t *testing.T) {
	svc := NewAssistService(nil, stubInference{err: errInferenceDown})

	verdict := svc.CheckContent(context.Background(), "hello world")

	assert.True(t, verdict.Allowed)
	assert.Equal(t, "moderation unavailable", verdict.Reason)
}

func TestCheckContentPassesVerdictThrough(t *testing.T) {
	svc := NewAssistService(nil, stubInference{verdict: ai.Verdict{Allowed: false, Reason: "harassment"}})

	verdict := svc.CheckContent(context.Background(), "something nasty")

	assert.False(t, verdict.Allowed)
	assert.Equal(t, "harassment", verdict.Reason)
}

func TestSuggestCaptionsDegradesToEmpty(t *testing.T) {
	svc := NewAssistService(nil, stubInference{err: errInferenceDown})

	out := svc.SuggestCaptions(context.Background(), "beach day")

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSuggestCaptionsReturnsModelOutput(t *testing.T) {
	svc := NewAssistService(nil, stubInference{payload: `{"captions": ["Sun's out", "Salt in the air"]}`})

	out := svc.SuggestCaptions(context.Background(), "beach day")

	assert.Equal(t, []string{"Sun's out", "Salt in the air"}, out)
}

func TestSuggestHashtagsStripsHashPrefix(t *testing.T) {
	svc := NewAssistService(nil, stubInference{payload: `{"hashtags": ["#sunset", "run", "#golden"]}`})

	out := svc.SuggestHashtags(context.Background(), "sunset run")

	assert.Equal(t, []string{"sunset", "run", "golden"}, out)
}

func TestSuggestHashtagsDegradesToEmpty(t *testing.T) {
	svc := NewAssistService(nil, stubInference{err: errInferenceDown})

	out := svc.SuggestHashtags(context.Background(), "sunset run")

	assert.NotNil(t, out)
	assert.Empty(t, out)
}
