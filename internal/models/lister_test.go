package models

import (
	"os"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.openAIKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.openAIKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoOpenAIKey(t *testing.T) {
	lister := NewLister("")

	// Without an OpenAI key the Gemini list is still printed and the OpenAI
	// section is skipped instead of failing.
	if err := lister.ListAvailableModels(); err != nil {
		t.Errorf("ListAvailableModels failed without OpenAI key: %v", err)
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	lister := NewLister(apiKey)
	if err := lister.ListAvailableModels(); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
}
