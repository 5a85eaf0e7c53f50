package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// screen is a rendered message body with its keyboard.
type screen struct {
	text string
	kb   *tgbotapi.InlineKeyboardMarkup
}

func newScreen(text string, kb tgbotapi.InlineKeyboardMarkup) screen {
	return screen{text: text, kb: &kb}
}

func renderLevelMenu() screen {
	return newScreen(formatLevelMenu(), buildLevelMenuKeyboard())
}

func renderLevelTitle(level entities.Level) screen {
	return newScreen(formatLevelTitle(level), buildLevelTitleKeyboard(level))
}

// renderPlay renders the current question or card of an unfinished play,
// or the summary when the play is over.
func renderPlay(play *entities.Play) screen {
	if play.Finished() {
		return renderSummary(play)
	}

	if q, ok := play.CurrentQuestion(); ok {
		return newScreen(formatQuestion(play, q), buildQuestionKeyboard(play, q))
	}

	card, _ := play.CurrentCard()
	return newScreen(formatCard(play, card), buildCardKeyboard(play.Flipped))
}

func renderSummary(play *entities.Play) screen {
	return newScreen(formatSummary(play), buildSummaryKeyboard(play))
}

func renderNotice(text string) screen {
	return newScreen(esc(text), buildBackKeyboard())
}
