package bot

import (
	"github.com/go-telegram/bot/models"

	"codeberg.org/snonux/babelbot/internal/language"
)

// buttonsPerRow controls how the picker buttons are laid out.
const buttonsPerRow = 2

// pickerKeyboard builds the inline language picker, leaving out the language
// whose translation is currently shown. An empty exclude code keeps all
// languages in.
func pickerKeyboard(options []language.Option, exclude string) *models.InlineKeyboardMarkup {
	var buttons []models.InlineKeyboardButton
	for _, o := range options {
		if o.Code == exclude {
			continue
		}
		buttons = append(buttons, models.InlineKeyboardButton{
			Text:         o.Label(),
			CallbackData: o.CallbackData(),
		})
	}

	var rows [][]models.InlineKeyboardButton
	for len(buttons) > 0 {
		n := buttonsPerRow
		if len(buttons) < n {
			n = len(buttons)
		}
		rows = append(rows, buttons[:n])
		buttons = buttons[n:]
	}

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
