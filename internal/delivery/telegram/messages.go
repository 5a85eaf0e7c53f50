package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

const (
	msgUnknownCommand    = "Unknown command. Use /help to see what I can do."
	msgInternalError     = "Something went wrong. Please try again later."
	msgNoActiveRound     = "This round is over. Pick a level to start again."
	msgNoEntries         = "The study guide has no entries for this level."
	msgLevel3Unavailable = "No nerves in the study guide have a swallowing role, so Level 3 is unavailable."
	msgStatsDisabled     = "Study history is not enabled on this bot."
	msgPickBoth          = "Pick a name and a type first."
	msgFlipFirst         = "Flip the card first."
	msgNothingToRetry    = "Nothing to retry. Every answer was correct!"
	msgAnswerCorrect     = "✅ Correct!"
)

var msgWelcome = strings.Join([]string{
	"<b>Cranial Nerves Study Bot</b> helps you learn the twelve cranial nerves.",
	"",
	"There are three levels:",
	"1️⃣ <b>Multiple Choice</b>: read a function, pick the nerve name and its type.",
	"2️⃣ <b>Flash Cards</b>: see a nerve name, recall its type and function.",
	"3️⃣ <b>Swallowing Roles</b>: see a role in swallowing, recall the nerve.",
	"",
	"After each level you can retry the items you missed.",
}, "\n")

var msgHelp = strings.Join([]string{
	"<b>Commands</b>",
	"",
	"/levels - choose a level",
	"/level1 - multiple choice",
	"/level2 - flash cards",
	"/level3 - swallowing roles",
	"/stats - your study history",
	"/help - this message",
}, "\n")

var levelDescriptions = map[entities.Level]string{
	entities.Level1: "You will see the function of a nerve. Pick its name and whether it is sensory, motor or both.",
	entities.Level2: "You will see a nerve name. Recall its type and function, flip the card and grade yourself.",
	entities.Level3: "You will see a role in swallowing. Recall which nerve performs it, flip the card and grade yourself.",
}

// esc escapes dataset text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func bold(s string) string {
	return "<b>" + esc(s) + "</b>"
}

func italic(s string) string {
	return "<i>" + esc(s) + "</i>"
}

func formatLevelMenu() string {
	return bold("Choose a level") + "\n\n" + esc("Each level uses every nerve in the study guide.")
}

func formatLevelTitle(level entities.Level) string {
	return fmt.Sprintf(
		"%s\n%s\n\n%s",
		bold(level.Title()),
		italic(level.Subtitle()),
		esc(levelDescriptions[level]),
	)
}

// formatProgress renders the "Level N · Question i of n" header line.
func formatProgress(play *entities.Play, noun string) string {
	if play.IsRetry {
		noun = "Retry " + strings.ToLower(noun)
	}
	return italic(fmt.Sprintf("%s · %s %d of %d", play.Level.Title(), noun, play.Index+1, play.Total()))
}

func formatQuestion(play *entities.Play, q entities.MultipleChoiceQuestion) string {
	var sb strings.Builder

	sb.WriteString(formatProgress(play, "Question"))
	sb.WriteString("\n\n")
	sb.WriteString(bold("Function:"))
	sb.WriteString(" ")
	sb.WriteString(esc(q.Entry.Function))
	sb.WriteString("\n\n")
	sb.WriteString(esc("Pick the nerve name and its type, then submit."))

	if play.SelectedName != "" || play.SelectedType != "" {
		sb.WriteString("\n")
	}
	if play.SelectedName != "" {
		sb.WriteString("\n")
		sb.WriteString(esc("Name: "))
		sb.WriteString(bold(play.SelectedName))
	}
	if play.SelectedType != "" {
		sb.WriteString("\n")
		sb.WriteString(esc("Type: "))
		sb.WriteString(bold(play.SelectedType.Label()))
	}

	return sb.String()
}

func formatCard(play *entities.Play, card entities.Entry) string {
	var sb strings.Builder

	sb.WriteString(formatProgress(play, "Card"))
	sb.WriteString("\n\n")

	switch play.Level {
	case entities.Level3:
		sb.WriteString(bold("Role in swallowing:"))
		sb.WriteString(" ")
		sb.WriteString(esc(card.SwallowingRole))
		if play.Flipped {
			sb.WriteString("\n\n")
			sb.WriteString(bold("Nerve:"))
			sb.WriteString(" ")
			sb.WriteString(esc(card.Name))
		}
	default:
		sb.WriteString(bold(card.Name))
		if play.Flipped {
			sb.WriteString("\n\n")
			sb.WriteString(bold("Type:"))
			sb.WriteString(" ")
			sb.WriteString(esc(card.Type.Label()))
			sb.WriteString("\n")
			sb.WriteString(bold("Function:"))
			sb.WriteString(" ")
			sb.WriteString(esc(card.Function))
		}
	}

	sb.WriteString("\n\n")
	if play.Flipped {
		sb.WriteString(esc("Did you get it right?"))
	} else {
		sb.WriteString(esc("Recall the answer, then flip the card."))
	}

	return sb.String()
}

// formatWrongAnswer builds the callback toast shown after a wrong level 1 answer.
func formatWrongAnswer(entry entities.Entry) string {
	return fmt.Sprintf("❌ It was %s (%s)", entry.Name, entry.Type.Label())
}

func formatSummary(play *entities.Play) string {
	summary := play.Score.Summary()

	var sb strings.Builder
	sb.WriteString(bold(play.Level.Title() + " complete"))
	sb.WriteString("\n\n")
	sb.WriteString(esc(fmt.Sprintf("✅ Correct: %d", summary.Correct)))
	sb.WriteString("\n")
	sb.WriteString(esc(fmt.Sprintf("❌ Wrong: %d", summary.Wrong)))
	sb.WriteString("\n")
	sb.WriteString(esc(fmt.Sprintf("📋 Total: %d", summary.Total)))
	sb.WriteString("\n")
	sb.WriteString(esc(fmt.Sprintf("🎯 Accuracy: %.1f%%", summary.Accuracy())))

	failed := play.Score.Failed()
	if len(failed) > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(bold("To review:"))
		for _, e := range failed {
			sb.WriteString("\n• ")
			sb.WriteString(esc(e.Name))
		}
	}

	return sb.String()
}

func formatStats(stats []entities.LevelStats) string {
	var sb strings.Builder
	sb.WriteString(bold("📊 Your study history"))

	for _, st := range stats {
		sb.WriteString("\n\n")
		sb.WriteString(bold(st.Level.Title() + " · " + st.Level.Subtitle()))
		sb.WriteString("\n")

		if st.Sessions == 0 {
			sb.WriteString(esc("Not played yet."))
			continue
		}

		total := st.Correct + st.Wrong
		accuracy := entities.LevelSummary{Correct: st.Correct, Wrong: st.Wrong, Total: total}.Accuracy()
		sb.WriteString(esc(fmt.Sprintf(
			"Rounds: %d · Correct: %d · Wrong: %d · Accuracy: %.1f%%",
			st.Sessions, st.Correct, st.Wrong, accuracy,
		)))
	}

	return sb.String()
}
