package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"vibeout/internal/models/response_models"
)

// GenerativeClientInterface is the reasoning side of the planner: turning a
// free-text vibe into two searchable venue categories, and writing the
// narrative itinerary for an already-picked pair of venues.
type GenerativeClientInterface interface {
	InterpretVibe(ctx context.Context, vibe, location string) (string, string, error)
	ComposeItinerary(ctx context.Context, vibe, location string, venues []response_models.Venue) (string, error)
	Close() error
}

// GeminiGenerativeClient implements GenerativeClientInterface using Google's Gemini models
type GeminiGenerativeClient struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerativeClient(apiKey, model string) (GenerativeClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerativeClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiGenerativeClient) InterpretVibe(ctx context.Context, vibe, location string) (string, string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.3)
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetMaxOutputTokens(40)

	resp, err := m.GenerateContent(ctx, genai.Text(buildVibePrompt(vibe, location)))
	if err != nil {
		return "", "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", "", fmt.Errorf("no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	first, second := ParseCategoryPair(content)
	return first, second, nil
}

func (c *GeminiGenerativeClient) ComposeItinerary(ctx context.Context, vibe, location string, venues []response_models.Venue) (string, error) {
	if len(venues) < 2 {
		return "", fmt.Errorf("itinerary needs two venues, got %d", len(venues))
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.8)
	m.SetMaxOutputTokens(600)

	resp, err := m.GenerateContent(ctx, genai.Text(buildItineraryPrompt(vibe, location, venues)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content")
	}

	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

func (c *GeminiGenerativeClient) Close() error {
	return c.client.Close()
}

// OpenAIGenerativeClient is the chat-completion rendition of the same contract.
type OpenAIGenerativeClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIGenerativeClient(apiKey, model string) GenerativeClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGenerativeClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIGenerativeClient) InterpretVibe(ctx context.Context, vibe, location string) (string, string, error) {
	content, err := c.complete(ctx, buildVibePrompt(vibe, location), 0.3)
	if err != nil {
		return "", "", err
	}
	first, second := ParseCategoryPair(content)
	return first, second, nil
}

func (c *OpenAIGenerativeClient) ComposeItinerary(ctx context.Context, vibe, location string, venues []response_models.Venue) (string, error) {
	if len(venues) < 2 {
		return "", fmt.Errorf("itinerary needs two venues, got %d", len(venues))
	}
	return c.complete(ctx, buildItineraryPrompt(vibe, location, venues), 0.8)
}

func (c *OpenAIGenerativeClient) complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIGenerativeClient) Close() error {
	return nil
}

// NewGenerativeClient Factory function to create either OpenAI or Gemini client based on config
func NewGenerativeClient(provider, apiKey, model string) (GenerativeClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIGenerativeClient(apiKey, model), nil
	case "gemini":
		return NewGeminiGenerativeClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func buildVibePrompt(vibe, location string) string {
	return fmt.Sprintf(`Analyze this vibe request: %q for the location %q.

Based on this vibe, suggest exactly TWO specific activity categories that would create a perfect two-stop outing.
Respond ONLY with two words separated by " then ", like: "Park then Cafe" or "Museum then Restaurant".

Make sure the categories are:
1. Searchable venue types (like Park, Cafe, Restaurant, Museum, Bookstore, etc.)
2. Create a logical flow for an outing
3. Match the mood and energy of the vibe

Response format: "CATEGORY1 then CATEGORY2"`, vibe, location)
}

func buildItineraryPrompt(vibe, location string, venues []response_models.Venue) string {
	return fmt.Sprintf(`Create a creative, engaging itinerary narrative for this two-stop outing:

Original vibe: %q
Location: %s

Stop 1: %s (%s)
Address: %s

Stop 2: %s (%s)
Address: %s

Write a compelling, creative narrative that:
1. Captures the spirit of the original vibe
2. Provides specific suggestions for what to do at each location
3. Creates a logical flow between the two stops
4. Includes timing recommendations
5. Adds creative flair that makes this more than just a list

Keep it engaging and personal, as if writing for a friend. Make it around 200-300 words.`,
		vibe, location,
		venues[0].Name, venues[0].Category, venues[0].Address,
		venues[1].Name, venues[1].Category, venues[1].Address)
}

// ParseCategoryPair extracts the two categories from a model reply of the
// form `"CATEGORY1 then CATEGORY2"`. Replies that drop the " then "
// separator fall back to the first and last word, with Park/Cafe as the
// final defaults.
func ParseCategoryPair(raw string) (string, string) {
	clean := strings.TrimSpace(raw)
	clean = strings.ReplaceAll(clean, `"`, "")
	clean = strings.ReplaceAll(clean, "'", "")

	if before, after, found := strings.Cut(clean, " then "); found {
		first := strings.TrimSpace(before)
		second := strings.TrimSpace(after)
		if first != "" && second != "" {
			return first, second
		}
	}

	parts := strings.Fields(clean)
	first, second := "Park", "Cafe"
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		second = parts[len(parts)-1]
	}
	return first, second
}
