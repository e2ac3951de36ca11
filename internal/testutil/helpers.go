package testutil

import (
	"testing"

	"github.com/go-telegram/bot/models"
)

// TextUpdate builds an inbound text message update.
func TextUpdate(chatID int64, messageID int, text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:   messageID,
			Chat: models.Chat{ID: chatID},
			Text: text,
		},
	}
}

// CallbackUpdate builds a button-press update against a picker message.
func CallbackUpdate(callbackID string, chatID int64, messageID int, data string) *models.Update {
	return &models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   callbackID,
			Data: data,
			Message: models.MaybeInaccessibleMessage{
				Message: &models.Message{
					ID:   messageID,
					Chat: models.Chat{ID: chatID},
				},
			},
		},
	}
}

// KeyboardButtons flattens an inline keyboard into its button list.
func KeyboardButtons(t *testing.T, markup models.ReplyMarkup) []models.InlineKeyboardButton {
	t.Helper()

	keyboard, ok := markup.(*models.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("Expected *models.InlineKeyboardMarkup, got %T", markup)
	}

	var buttons []models.InlineKeyboardButton
	for _, row := range keyboard.InlineKeyboard {
		buttons = append(buttons, row...)
	}
	return buttons
}
