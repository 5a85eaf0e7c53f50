package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

const selectedMark = "✅ "

var levelEmoji = map[entities.Level]string{
	entities.Level1: "1️⃣",
	entities.Level2: "2️⃣",
	entities.Level3: "3️⃣",
}

func backToLevelsButton() tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData("⬅️ Levels", buildMenuCallback())
}

// buildLevelMenuKeyboard builds the level selection keyboard.
func buildLevelMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(entities.Levels))
	for _, l := range entities.Levels {
		label := fmt.Sprintf("%s %s", levelEmoji[l], l.Subtitle())
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildLevelCallback(l)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildLevelTitleKeyboard builds keyboard for a level title screen.
func buildLevelTitleKeyboard(level entities.Level) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Start", buildStartCallback(level)),
		),
		tgbotapi.NewInlineKeyboardRow(backToLevelsButton()),
	)
}

// buildQuestionKeyboard builds keyboard for a multiple choice question:
// one row per name option, one row of nerve types and a submit row.
func buildQuestionKeyboard(play *entities.Play, q entities.MultipleChoiceQuestion) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.NameOptions)+2)

	for i, name := range q.NameOptions {
		label := name
		if name == play.SelectedName {
			label = selectedMark + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildChoiceNameCallback(i)),
		))
	}

	typeRow := make([]tgbotapi.InlineKeyboardButton, 0, len(entities.NerveTypes))
	for _, t := range entities.NerveTypes {
		label := t.Label()
		if t == play.SelectedType {
			label = selectedMark + label
		}
		typeRow = append(typeRow, tgbotapi.NewInlineKeyboardButtonData(label, buildChoiceTypeCallback(t)))
	}
	rows = append(rows, typeRow)

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📨 Submit", buildChoiceSubmitCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildCardKeyboard builds keyboard for a flash card: flip before, grade after.
func buildCardKeyboard(flipped bool) tgbotapi.InlineKeyboardMarkup {
	if !flipped {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔄 Flip", buildCardFlipCallback()),
			),
		)
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Correct", buildCardScoreCallback(true)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Incorrect", buildCardScoreCallback(false)),
		),
	)
}

// buildSummaryKeyboard builds keyboard for the level summary screen.
func buildSummaryKeyboard(play *entities.Play) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if len(play.Score.Failed()) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Retry failed", buildRetryCallback()),
		))
	}

	if next, ok := play.Level.Next(); ok {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ "+next.Title(), buildNextCallback()),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(backToLevelsButton()))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildBackKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(backToLevelsButton()))
}
