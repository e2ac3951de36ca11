package bot

import (
	"context"
	"errors"
	"fmt"
	"log"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"codeberg.org/snonux/babelbot/internal/language"
	"codeberg.org/snonux/babelbot/internal/quota"
	"codeberg.org/snonux/babelbot/internal/session"
	"codeberg.org/snonux/babelbot/internal/translation"
)

// User-visible message texts.
const (
	pickerPrompt    = "💬 Translation available:\nSelect a language:"
	anotherLanguage = "🔁 Show in another language:"
	quotaExhausted  = "Daily translation limit reached. The bot is sleeping until tomorrow."
	sessionExpired  = "Original message not found or has expired."
	translatingAck  = "Translating…"
	genericFailure  = "Something went wrong. Please try again later."
	inlineFailure   = "[translation failed, please pick a language to retry]"
)

// Bot orchestrates the translation conversation: it gates inbound messages on
// the daily quota, renders language pickers, and resolves button presses into
// translated message edits.
type Bot struct {
	transport Transport
	gate      *quota.Gate
	sessions  *session.Registry
	provider  translation.Provider
	languages []language.Option
	logger    *log.Logger
}

// New creates a bot controller. The transport is attached by Run, or directly
// by tests.
func New(gate *quota.Gate, sessions *session.Registry, provider translation.Provider, languages []language.Option, logger *log.Logger) *Bot {
	if logger == nil {
		logger = log.Default()
	}
	if len(languages) == 0 {
		languages = language.DefaultOptions()
	}
	return &Bot{
		gate:      gate,
		sessions:  sessions,
		provider:  provider,
		languages: languages,
		logger:    logger,
	}
}

// Run connects to Telegram and polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("Telegram bot token is required")
	}

	tg, err := tgbot.New(token, tgbot.WithDefaultHandler(b.handleMessage))
	if err != nil {
		return fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	b.transport = tg

	tg.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, language.CallbackPrefix, tgbot.MatchTypePrefix, b.handleCallback)

	b.logger.Printf("babelbot polling for updates (%d languages)", len(b.languages))
	tg.Start(ctx)
	return nil
}

// handleMessage processes an inbound text message: reserve quota, send the
// picker, register the session keyed by the picker message.
func (b *Bot) handleMessage(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	defer b.recoverHandler("message")

	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}

	if err := b.gate.Reserve(); err != nil {
		if errors.Is(err, quota.ErrQuotaExceeded) {
			b.reply(ctx, msg, quotaExhausted)
			return
		}
		// Quota store failure: fail closed, tell the user something broke.
		b.logger.Printf("quota reservation failed: %v", err)
		b.reply(ctx, msg, genericFailure)
		return
	}

	sent, err := b.transport.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        pickerPrompt,
		ReplyMarkup: pickerKeyboard(b.languages, ""),
	})
	if err != nil {
		b.logger.Printf("failed to send language picker: %v", err)
		return
	}

	b.sessions.Put(session.Key{ChatID: sent.Chat.ID, MessageID: sent.ID}, msg.Text)
}

// handleCallback resolves a language button press: look up the session, ack
// the press before the slow provider call, then edit the picker message with
// the result and a fresh picker excluding the chosen language.
func (b *Bot) handleCallback(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	defer b.recoverHandler("callback")

	cb := update.CallbackQuery
	if cb == nil {
		return
	}

	code, err := language.ParseCallbackData(cb.Data)
	if err != nil {
		b.logger.Printf("ignoring callback: %v", err)
		b.answer(ctx, cb.ID, "", false)
		return
	}
	target, ok := language.Lookup(b.languages, code)
	if !ok {
		b.logger.Printf("ignoring callback for unconfigured language %q", code)
		b.answer(ctx, cb.ID, "", false)
		return
	}

	msg := cb.Message.Message
	if msg == nil {
		// The picker message is no longer accessible, nothing to edit.
		b.answer(ctx, cb.ID, sessionExpired, true)
		return
	}

	key := session.Key{ChatID: msg.Chat.ID, MessageID: msg.ID}
	original, found := b.sessions.Get(key)
	if !found {
		b.answer(ctx, cb.ID, sessionExpired, true)
		return
	}

	// Ack first so the button stops spinning during the provider call.
	b.answer(ctx, cb.ID, translatingAck, false)

	translated, terr := b.provider.Translate(ctx, original, target)
	if terr != nil {
		b.logger.Printf("translation to %s failed: %v", target.Code, terr)
		translated = inlineFailure
	}

	body := fmt.Sprintf("%s Translation: %s\n\n%s", target.Name, translated, anotherLanguage)
	_, err = b.transport.EditMessageText(ctx, &tgbot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        body,
		ReplyMarkup: pickerKeyboard(b.languages, target.Code),
	})
	if err != nil {
		b.logger.Printf("failed to edit picker message: %v", err)
	}

	b.answer(ctx, cb.ID, "", false)
}

// reply sends text as a reply to msg, logging instead of failing the handler.
func (b *Bot) reply(ctx context.Context, msg *models.Message, text string) {
	_, err := b.transport.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: msg.Chat.ID,
		Text:   text,
		ReplyParameters: &models.ReplyParameters{
			MessageID: msg.ID,
		},
	})
	if err != nil {
		b.logger.Printf("failed to send reply: %v", err)
	}
}

// answer acknowledges a callback query, logging instead of failing the handler.
func (b *Bot) answer(ctx context.Context, callbackID, text string, alert bool) {
	_, err := b.transport.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
	if err != nil {
		b.logger.Printf("failed to answer callback query: %v", err)
	}
}

// recoverHandler keeps a panicking handler from taking down the poll loop.
func (b *Bot) recoverHandler(kind string) {
	if r := recover(); r != nil {
		b.logger.Printf("recovered from panic in %s handler: %v", kind, r)
	}
}
