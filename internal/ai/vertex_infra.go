package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// VertexClient talks to Gemini through Vertex AI. Credentials come from
// application default credentials (GOOGLE_APPLICATION_CREDENTIALS).
type VertexClient struct {
	client *genai.Client
	model  string
	params GenerationParams
}

func NewVertexClient(ctx context.Context, project, location, model string) (*VertexClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  project,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("init vertex client: %w", err)
	}
	return &VertexClient{
		client: client,
		model:  model,
		params: DefaultParams,
	}, nil
}

func (c *VertexClient) Generate(ctx context.Context, req Request) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(req.Audio, req.MimeType),
		genai.NewPartFromText(req.Prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, c.generateConfig())
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", c.model, err)
	}
	return resp.Text(), nil
}

func (c *VertexClient) generateConfig() *genai.GenerateContentConfig {
	temperature := c.params.Temperature
	topK := c.params.TopK
	topP := c.params.TopP
	return &genai.GenerateContentConfig{
		Temperature:    &temperature,
		TopK:           &topK,
		TopP:           &topP,
		AudioTimestamp: c.params.AudioTimestamp,
	}
}
