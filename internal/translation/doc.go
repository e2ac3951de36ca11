// Package translation provides the gateway to remote LLM translation
// providers. Gemini is the primary backend with OpenAI chat completion as an
// alternative; both are hidden behind the Provider interface so the bot and
// the tests never talk to a concrete API client directly.
package translation
