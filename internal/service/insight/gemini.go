package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

// Gemini is the hosted provider, backed by the official generative AI SDK.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini builds the hosted provider.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	if modelName == "" {
		modelName = defaultModel
	}

	return &Gemini{client: client, model: client.GenerativeModel(modelName)}, nil
}

// Close releases the underlying client connection.
func (g *Gemini) Close() {
	if g.client != nil {
		_ = g.client.Close()
	}
}

// ProductionInsight sends one request carrying the serialized workspace and
// staff count, and returns the model's plain-text reply.
func (g *Gemini) ProductionInsight(ctx context.Context, snap Snapshot) (string, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("serialize production snapshot: %w", err)
	}

	prompt := fmt.Sprintf(`You are the assistant on a garment factory dashboard in Bangladesh.
Given today's production workspace and staff count as JSON, reply with one
short motivating status message in Bengali (2-3 sentences, plain text, no
markdown) mentioning the total quantity produced.

Data:
%s`, payload)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}
	return text, nil
}
