package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// geminiModels are the Gemini generateContent models the bot supports. The
// Gemini API has no key-scoped model listing comparable to OpenAI's, so these
// are fixed.
var geminiModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
	"gemini-1.5-pro",
	"gemini-2.0-flash",
}

// Lister handles listing available translation models
type Lister struct {
	openAIKey string
	client    *openai.Client
}

// NewLister creates a new model lister
func NewLister(openAIKey string) *Lister {
	return &Lister{
		openAIKey: openAIKey,
		client:    openai.NewClient(openAIKey),
	}
}

// ListAvailableModels prints the translation models available to the
// configured API keys.
func (l *Lister) ListAvailableModels() error {
	fmt.Println("Gemini models (--gemini-model):")
	for _, model := range geminiModels {
		fmt.Printf("  %s\n", model)
	}

	if l.openAIKey == "" {
		fmt.Println("\nOpenAI models: skipped, OPENAI_API_KEY not set")
		return nil
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list OpenAI models: %w", err)
	}

	chatModels := []string{}
	for _, model := range models.Models {
		if strings.Contains(model.ID, "gpt") || strings.Contains(model.ID, "chat") {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)

	fmt.Println("\nOpenAI chat models (--openai-model):")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
	} else {
		for _, model := range chatModels {
			fmt.Printf("  %s\n", model)
		}
	}

	return nil
}
