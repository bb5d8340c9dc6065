package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"yatra/internal/models/request_models"
)

// OpenAIArrangerClient implements ArrangerClientInterface over the Chat
// Completions API.
type OpenAIArrangerClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIArrangerClient(apiKey, model string) *OpenAIArrangerClient {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIArrangerClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIArrangerClient) ArrangeItinerary(
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

	prompt := buildArrangerPrompt(places, tripType, days, startDate, personalities)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful assistant that strictly follows instructions."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   800,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("openai arrangement: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai arrangement: empty response")
	}

	return extractJSONObject(resp.Choices[0].Message.Content), nil
}
