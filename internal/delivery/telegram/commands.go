package telegram

import (
	"context"
)

// handleStartCommand drops any round in progress and shows the welcome screen.
func (h *Handler) handleStartCommand(chatID int64) {
	h.plays.Delete(chatID)

	h.send(newHTMLMessage(chatID, msgWelcome))
	h.send(newScreenMessage(chatID, renderLevelMenu()))
}

func (h *Handler) statsHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		stats, err := h.historyService.Stats(ctx, chatID)
		if err != nil {
			return err
		}

		h.send(newHTMLMessage(chatID, formatStats(stats)))
		return nil
	}
}
