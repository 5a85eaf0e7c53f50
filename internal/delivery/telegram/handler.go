package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// Bot commands.
const (
	cmdStart  = "start"
	cmdLevels = "levels"
	cmdLevel1 = "level1"
	cmdLevel2 = "level2"
	cmdLevel3 = "level3"
	cmdStats  = "stats"
	cmdHelp   = "help"
)

// BotCommands lists the commands registered with Telegram on startup.
// /stats is left out when study history is disabled.
func BotCommands(withStats bool) []tgbotapi.BotCommand {
	commands := []tgbotapi.BotCommand{
		{Command: cmdStart, Description: "Start studying"},
		{Command: cmdLevels, Description: "Choose a level"},
		{Command: cmdLevel1, Description: "Level 1: multiple choice"},
		{Command: cmdLevel2, Description: "Level 2: flash cards"},
		{Command: cmdLevel3, Description: "Level 3: swallowing roles"},
	}
	if withStats {
		commands = append(commands, tgbotapi.BotCommand{Command: cmdStats, Description: "Study history"})
	}
	return append(commands, tgbotapi.BotCommand{Command: cmdHelp, Description: "Help"})
}

type Handler struct {
	bot            BotAPI
	logger         *zap.Logger
	studyService   StudyService
	historyService HistoryService
	plays          PlayStorage
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	studyService StudyService,
	historyService HistoryService,
	plays PlayStorage,
) *Handler {
	return &Handler{
		bot:            bot,
		logger:         logger,
		studyService:   studyService,
		historyService: historyService,
		plays:          plays,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
		return
	}

	switch update.Message.Command() {
	case cmdStart:
		h.handleStartCommand(chatID)

	case cmdLevels:
		h.send(newScreenMessage(chatID, renderLevelMenu()))

	case cmdLevel1:
		h.send(newScreenMessage(chatID, renderLevelTitle(entities.Level1)))

	case cmdLevel2:
		h.send(newScreenMessage(chatID, renderLevelTitle(entities.Level2)))

	case cmdLevel3:
		h.send(newScreenMessage(chatID, renderLevelTitle(entities.Level3)))

	case cmdStats:
		_ = h.withErrorHandling(h.statsHandler())(ctx, chatID)

	case cmdHelp:
		h.send(newHTMLMessage(chatID, msgHelp))

	default:
		h.send(newHTMLMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) sendError(chatID int64, err string) {
	msg := newHTMLMessage(chatID, esc(err))
	h.send(msg)
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
