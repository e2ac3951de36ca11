package testutil

import (
	"context"
	"fmt"
	"sync"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"codeberg.org/snonux/babelbot/internal/language"
)

// MockTransport mocks the Telegram transport for controller tests. It records
// every call in order and returns scripted or synthesized responses.
type MockTransport struct {
	mu sync.Mutex

	// Calls lists every transport call in invocation order, e.g.
	// "SendMessage chat=100" or "AnswerCallbackQuery id=cb1".
	Calls []string

	// Sent and Edited capture the raw params of each call.
	Sent     []*tgbot.SendMessageParams
	Edited   []*tgbot.EditMessageTextParams
	Answered []*tgbot.AnswerCallbackQueryParams

	// SendErr, EditErr and AnswerErr make the corresponding call fail.
	SendErr   error
	EditErr   error
	AnswerErr error

	nextMessageID int
}

// SendMessage mocks sending a new chat message.
func (m *MockTransport) SendMessage(_ context.Context, params *tgbot.SendMessageParams) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, fmt.Sprintf("SendMessage chat=%v", params.ChatID))
	if m.SendErr != nil {
		return nil, m.SendErr
	}
	m.Sent = append(m.Sent, params)

	m.nextMessageID++
	chatID, _ := params.ChatID.(int64)
	return &models.Message{
		ID:   m.nextMessageID,
		Chat: models.Chat{ID: chatID},
		Text: params.Text,
	}, nil
}

// EditMessageText mocks editing an existing chat message.
func (m *MockTransport) EditMessageText(_ context.Context, params *tgbot.EditMessageTextParams) (*models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, fmt.Sprintf("EditMessageText chat=%v message=%d", params.ChatID, params.MessageID))
	if m.EditErr != nil {
		return nil, m.EditErr
	}
	m.Edited = append(m.Edited, params)

	chatID, _ := params.ChatID.(int64)
	return &models.Message{
		ID:   params.MessageID,
		Chat: models.Chat{ID: chatID},
		Text: params.Text,
	}, nil
}

// AnswerCallbackQuery mocks acknowledging a button press.
func (m *MockTransport) AnswerCallbackQuery(_ context.Context, params *tgbot.AnswerCallbackQueryParams) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, fmt.Sprintf("AnswerCallbackQuery id=%s", params.CallbackQueryID))
	if m.AnswerErr != nil {
		return false, m.AnswerErr
	}
	m.Answered = append(m.Answered, params)
	return true, nil
}

// MockProvider mocks a translation provider with scripted results keyed by
// "<text>-><code>".
type MockProvider struct {
	mu sync.Mutex

	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// Translate returns the scripted translation for text and target, or a
// synthesized placeholder when none is scripted.
func (m *MockProvider) Translate(_ context.Context, text string, target language.Option) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := fmt.Sprintf("%s->%s", text, target.Code)
	m.Calls = append(m.Calls, key)

	if err, ok := m.Errors[key]; ok {
		return "", err
	}
	if translated, ok := m.Translations[key]; ok {
		return translated, nil
	}

	// Default response
	return fmt.Sprintf("mock translation of %q to %s", text, target.Code), nil
}

// Name returns the provider name
func (m *MockProvider) Name() string { return "mock" }

// IsAvailable always reports the mock as available
func (m *MockProvider) IsAvailable() error { return nil }
