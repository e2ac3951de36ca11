package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"codeberg.org/snonux/babelbot/internal/language"
)

// requestTimeout bounds a single provider call.
const requestTimeout = 30 * time.Second

// GeminiProvider implements Provider on top of the Gemini generateContent API.
type GeminiProvider struct {
	client *genai.Client
	config *Config
}

// NewGeminiProvider creates a new Gemini translation provider
func NewGeminiProvider(config *Config) (Provider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: config,
	}, nil
}

// Translate translates text into the target language via Gemini.
func (p *GeminiProvider) Translate(ctx context.Context, text string, target language.Option) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	generateConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0), // translation accuracy
		MaxOutputTokens: int32(p.config.MaxOutputTokens),
	}

	resp, err := p.client.Models.GenerateContent(ctx,
		p.config.GeminiModel,
		genai.Text(buildPrompt(text, target)),
		generateConfig,
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	return firstCandidateText(resp.Candidates)
}

// firstCandidateText scans candidates in order and returns the first one
// exposing non-empty generated text.
func firstCandidateText(candidates []*genai.Candidate) (string, error) {
	for _, candidate := range candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			if text := strings.TrimSpace(part.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", ErrNoCandidates
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is properly configured
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
