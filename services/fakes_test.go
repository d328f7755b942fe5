package services

import (
	"context"
	"encoding/json"
	"errors"

	"vibespace/ai"
)

var errInferenceDown = errors.New("inference down")

// stubInference scripts the generative collaborator for tests.
type stubInference struct {
	verdict ai.Verdict
	payload string
	vectors [][]float32
	err     error
}

func (s stubInference) Moderate(ctx context.Context, text string) (ai.Verdict, error) {
	if s.err != nil {
		return ai.Verdict{}, s.err
	}
	return s.verdict, nil
}

func (s stubInference) GenerateJSON(ctx context.Context, prompt string, out interface{}) error {
	if s.err != nil {
		return s.err
	}
	return json.Unmarshal([]byte(s.payload), out)
}

func (s stubInference) Embed(ctx context.Context, inputs []string) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vectors, nil
}
