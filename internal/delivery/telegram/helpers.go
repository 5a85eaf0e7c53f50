package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func newScreenMessage(chatID int64, s screen) tgbotapi.MessageConfig {
	msg := newHTMLMessage(chatID, s.text)
	if s.kb != nil {
		msg.ReplyMarkup = *s.kb
	}
	return msg
}

func newScreenEdit(chatID int64, messageID int, s screen) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, s.text)
	edit.ParseMode = tgbotapi.ModeHTML
	if s.kb != nil {
		edit.ReplyMarkup = s.kb
	}
	return edit
}
