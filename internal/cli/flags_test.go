package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"DailyLimit", flags.DailyLimit, 1500},
		{"Provider", flags.Provider, "gemini"},
		{"GeminiModel", flags.GeminiModel, "gemini-1.5-flash"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini"},
		{"MaxOutputTokens", flags.MaxOutputTokens, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"DBPath", flags.DBPath},
		{"LogFile", flags.LogFile},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}

	if flags.ListModels {
		t.Error("ListModels should default to false")
	}
	if flags.SessionCapacity != 0 {
		t.Errorf("SessionCapacity = %d, want 0", flags.SessionCapacity)
	}
}
