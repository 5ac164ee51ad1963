package ai

import (
	"context"
	"errors"
)

var ErrAnalysis = errors.New("analysis failed")

const MimeTypeMPEG = "audio/mpeg"

// Request is one audio + instruction submission to a generative model.
type Request struct {
	Audio    []byte
	MimeType string
	Prompt   string
}

// Analyzer returns the model's free-text answer for a request.
type Analyzer interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GenerationParams are fixed: low randomness, timestamp-aware decoding.
type GenerationParams struct {
	Temperature    float32
	TopK           float32
	TopP           float32
	AudioTimestamp bool
}

var DefaultParams = GenerationParams{
	Temperature:    0.2,
	TopK:           40,
	TopP:           0.95,
	AudioTimestamp: true,
}
