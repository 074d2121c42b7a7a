package aifx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"vibeout/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerativeClient)

// GenerativeConfig holds configuration for the AI provider
type GenerativeConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerativeClient creates the vibe-interpretation client based on environment variables
func ProvideGenerativeClient() (utils.GenerativeClientInterface, error) {
	config := getGenerativeConfig()

	log.Printf("Initializing %s generative client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIGenerativeClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiGenerativeClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

// getGenerativeConfig reads configuration from environment variables
func getGenerativeConfig() GenerativeConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini") // Default to free Gemini

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerativeConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
