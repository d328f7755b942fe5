package ai

import (
	"context"
	"errors"
)

var ErrDisabled = errors.New("inference disabled: no API key configured")

// Disabled stands in when no API key is configured. Every call fails, which
// drives the callers' degraded paths (fail-open moderation, empty search
// results, random ad selection) instead of crashing the server.
type Disabled struct{}

func (Disabled) Moderate(ctx context.Context, text string) (Verdict, error) {
	return Verdict{}, ErrDisabled
}

func (Disabled) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	return ErrDisabled
}

func (Disabled) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	return nil, ErrDisabled
}
