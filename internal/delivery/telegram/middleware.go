package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/cranial-nerves-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs handler errors and answers the chat. Errors the
// user can act on are shown as a notice, anything else as an internal error.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		if notice, ok := userNotice(err); ok {
			h.logger.Info("handle notice",
				zap.Int64("chat_id", chatID),
				zap.String("reason", err.Error()),
			)
			h.send(newScreenMessage(chatID, renderNotice(notice)))
			return nil
		}

		h.logger.Error("handle error",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return nil
	}
}

// userNotice maps domain errors to a message the user can act on.
func userNotice(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrUnavailable):
		return msgLevel3Unavailable, true
	case errors.Is(err, service.ErrEmptyInput):
		return msgNoEntries, true
	case errors.Is(err, service.ErrHistoryDisabled):
		return msgStatsDisabled, true
	default:
		return "", false
	}
}
