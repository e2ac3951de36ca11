package translation

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/snonux/babelbot/internal/language"
)

// ErrNoCandidates is returned when the provider response contains no usable
// translated content.
var ErrNoCandidates = errors.New("translation: no candidates in provider response")

// Provider defines the interface for translation backends.
type Provider interface {
	// Translate translates text into the target language. It makes exactly
	// one attempt; retrying is the caller's business.
	Translate(ctx context.Context, text string, target language.Option) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for translation providers
type Config struct {
	Provider string // Provider name: "gemini" or "openai"

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string // e.g. "gemini-1.5-flash"

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string // e.g. "gpt-4o-mini"

	// Generation settings shared by all providers
	MaxOutputTokens int
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:        "gemini",
		GeminiModel:     "gemini-1.5-flash",
		OpenAIModel:     "gpt-4o-mini",
		MaxOutputTokens: 512,
	}
}

// NewProvider creates the appropriate translation provider based on configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "gemini":
		if config.GeminiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(config)

	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAIProvider(config)

	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}

// buildPrompt renders the translation instruction for the target language.
// The provider is told to return the bare translation only, so the bot can
// paste the response straight into the chat message.
func buildPrompt(text string, target language.Option) string {
	return fmt.Sprintf("Translate this text to %s exactly, return ONLY the translated text, no additional words or explanations:\n\n\"%s\"", target.Name, text)
}
