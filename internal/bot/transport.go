package bot

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Transport is the subset of the Telegram API the controller needs. Keeping
// it as an interface lets the tests drive the controller with a scripted
// transport instead of a live bot connection.
type Transport interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *tgbot.EditMessageTextParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *tgbot.AnswerCallbackQueryParams) (bool, error)
}

// Compile-time check that the real bot satisfies the interface.
var _ Transport = (*tgbot.Bot)(nil)
