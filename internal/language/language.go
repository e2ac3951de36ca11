package language

import (
	"fmt"
	"strings"
)

// CallbackPrefix is the callback-data prefix shared by all picker buttons.
const CallbackPrefix = "translate_"

// Option describes one selectable target language.
type Option struct {
	Code string // ISO 639-1 code, also used in callback data
	Name string // Display name in the language itself
	Flag string // Flag emoji shown on the picker button
}

// Label returns the button label for the option, e.g. "🇫🇷 Français".
func (o Option) Label() string {
	if o.Flag == "" {
		return o.Name
	}
	return o.Flag + " " + o.Name
}

// CallbackData returns the callback payload for the option, e.g. "translate_fr".
func (o Option) CallbackData() string {
	return CallbackPrefix + o.Code
}

// DefaultOptions returns the built-in target language set.
func DefaultOptions() []Option {
	return []Option{
		{Code: "ru", Name: "Русский", Flag: "🇷🇺"},
		{Code: "pt", Name: "Português", Flag: "🇧🇷"},
		{Code: "fr", Name: "Français", Flag: "🇫🇷"},
		{Code: "en", Name: "English", Flag: "🇬🇧"},
	}
}

// Lookup finds an option by its code.
func Lookup(options []Option, code string) (Option, bool) {
	for _, o := range options {
		if o.Code == code {
			return o, true
		}
	}
	return Option{}, false
}

// ParseCallbackData extracts the language code from button callback data.
func ParseCallbackData(data string) (string, error) {
	code := strings.TrimPrefix(data, CallbackPrefix)
	if code == data || code == "" {
		return "", fmt.Errorf("malformed language callback data: %q", data)
	}
	return code, nil
}
