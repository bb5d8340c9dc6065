package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"yatra/internal/models/request_models"
)

// GeminiArrangerClient implements ArrangerClientInterface using Google's
// Gemini models with forced JSON output.
type GeminiArrangerClient struct {
	client *genai.Client
	model  string
}

func NewGeminiArrangerClient(apiKey, model string) (*GeminiArrangerClient, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiArrangerClient{client: client, model: model}, nil
}

func (c *GeminiArrangerClient) ArrangeItinerary(
	ctx context.Context,
	places []request_models.ArrangerPlace,
	tripType string,
	days int,
	startDate string,
	personalities []string,
) (string, error) {
	if days < 1 || days > 30 {
		return "", fmt.Errorf("bad day count %d", days)
	}
	if len(places) == 0 {
		return "", fmt.Errorf("no places to arrange")
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.1)

	prompt := buildArrangerPrompt(places, tripType, days, startDate, personalities)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini arrangement: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini arrangement: empty response")
	}

	var content string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content += string(text)
		}
	}
	if content == "" {
		return "", fmt.Errorf("gemini arrangement: no text parts")
	}

	return extractJSONObject(content), nil
}
