// Package models provides functionality for listing the translation models
// usable with the configured API keys. It helps operators pick values for
// the --gemini-model and --openai-model flags.
package models
