package telegram

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// callbackResult is what a callback produces: an optional screen that
// replaces the pressed message and an optional toast.
type callbackResult struct {
	screen *screen
	toast  string
}

func show(s screen) callbackResult {
	return callbackResult{screen: &s}
}

func toast(text string) callbackResult {
	return callbackResult{toast: text}
}

type callbackFunc func(ctx context.Context, chatID int64, cd callbackData) (callbackResult, error)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var answer string
	defer func() { h.answerCallback(cb.ID, answer) }()

	if cb.Message == nil || cb.Message.Chat == nil {
		h.logger.Debug("callback without message", zap.String("data", cb.Data))
		return
	}

	chatID := cb.Message.Chat.ID
	cd := decodeCallback(cb.Data)

	var fn callbackFunc
	switch cd.Action {
	case actionMenu:
		fn = h.menuCallback
	case actionLevel:
		fn = h.levelCallback
	case actionStart:
		fn = h.startCallback
	case actionChoice:
		fn = h.choiceCallback
	case actionCard:
		fn = h.cardCallback
	case actionRetry:
		fn = h.retryCallback
	case actionNext:
		fn = h.nextCallback
	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
		return
	}

	res, err := fn(ctx, chatID, cd)
	if err != nil {
		if notice, ok := userNotice(err); ok {
			res = show(renderNotice(notice))
		} else {
			h.logger.Error("handle callback",
				zap.Int64("chat_id", chatID),
				zap.String("data", cb.Data),
				zap.Error(err),
			)
			res = toast(msgInternalError)
		}
	}

	if res.screen != nil {
		h.send(newScreenEdit(chatID, cb.Message.MessageID, *res.screen))
	}
	answer = res.toast
}

// answerCallback removes the user's "clock" and optionally shows a toast.
func (h *Handler) answerCallback(id, text string) {
	answer := tgbotapi.NewCallback(id, text)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}

func (h *Handler) menuCallback(_ context.Context, _ int64, _ callbackData) (callbackResult, error) {
	return show(renderLevelMenu()), nil
}

func (h *Handler) levelCallback(_ context.Context, _ int64, cd callbackData) (callbackResult, error) {
	level, err := entities.ParseLevel(cd.param(0))
	if err != nil {
		h.logger.Debug("invalid level in callback", zap.String("data", cd.Raw))
		return callbackResult{}, nil
	}
	return show(renderLevelTitle(level)), nil
}

func (h *Handler) startCallback(ctx context.Context, chatID int64, cd callbackData) (callbackResult, error) {
	level, err := entities.ParseLevel(cd.param(0))
	if err != nil {
		h.logger.Debug("invalid level in callback", zap.String("data", cd.Raw))
		return callbackResult{}, nil
	}

	entries, err := h.studyService.LoadEntries(ctx)
	if err != nil {
		return callbackResult{}, err
	}

	return h.startPlay(chatID, level, entries, false)
}

func (h *Handler) startPlay(chatID int64, level entities.Level, entries []entities.Entry, isRetry bool) (callbackResult, error) {
	play, err := h.studyService.StartPlay(chatID, level, entries, isRetry)
	if err != nil {
		return callbackResult{}, err
	}

	h.plays.Store(chatID, play)

	h.logger.Info("round started",
		zap.Int64("chat_id", chatID),
		zap.Int("level", int(level)),
		zap.Bool("retry", isRetry),
		zap.Int("total", play.Total()),
	)

	return show(renderPlay(play)), nil
}

func (h *Handler) choiceCallback(ctx context.Context, chatID int64, cd callbackData) (callbackResult, error) {
	play, ok := h.plays.Get(chatID)
	if !ok || play.Level != entities.Level1 {
		return toast(msgNoActiveRound), nil
	}

	q, ok := play.CurrentQuestion()
	if !ok {
		return toast(msgNoActiveRound), nil
	}

	switch cd.param(0) {
	case choiceName:
		i, err := strconv.Atoi(cd.param(1))
		if err != nil || i < 0 || i >= len(q.NameOptions) {
			h.logger.Debug("invalid option in callback", zap.String("data", cd.Raw))
			return callbackResult{}, nil
		}
		if play.SelectedName == q.NameOptions[i] {
			return callbackResult{}, nil
		}
		play.SelectedName = q.NameOptions[i]
		return show(renderPlay(play)), nil

	case choiceType:
		t, err := entities.ParseNerveType(cd.param(1))
		if err != nil {
			h.logger.Debug("invalid nerve type in callback", zap.String("data", cd.Raw))
			return callbackResult{}, nil
		}
		if play.SelectedType == t {
			return callbackResult{}, nil
		}
		play.SelectedType = t
		return show(renderPlay(play)), nil

	case choiceSubmit:
		isCorrect, submitted := play.SubmitChoice()
		if !submitted {
			return toast(msgPickBoth), nil
		}

		res := show(renderPlay(play))
		res.toast = msgAnswerCorrect
		if !isCorrect {
			res.toast = formatWrongAnswer(q.Entry)
		}

		if play.Finished() {
			h.finishPlay(ctx, chatID, play)
		}
		return res, nil

	default:
		h.logger.Debug("unknown choice callback", zap.String("data", cd.Raw))
		return callbackResult{}, nil
	}
}

func (h *Handler) cardCallback(ctx context.Context, chatID int64, cd callbackData) (callbackResult, error) {
	play, ok := h.plays.Get(chatID)
	if !ok || play.Level == entities.Level1 || play.Finished() {
		return toast(msgNoActiveRound), nil
	}

	switch cd.param(0) {
	case cardFlip:
		if play.Flipped {
			return callbackResult{}, nil
		}
		play.Flipped = true
		return show(renderPlay(play)), nil

	case cardScore:
		if !play.ScoreCard(cd.param(1) == "1") {
			return toast(msgFlipFirst), nil
		}

		if play.Finished() {
			h.finishPlay(ctx, chatID, play)
		}
		return show(renderPlay(play)), nil

	default:
		h.logger.Debug("unknown card callback", zap.String("data", cd.Raw))
		return callbackResult{}, nil
	}
}

// retryCallback replays only the entries missed in the last finished round.
func (h *Handler) retryCallback(_ context.Context, chatID int64, _ callbackData) (callbackResult, error) {
	last, ok := h.plays.LastFinished(chatID)
	if !ok {
		return toast(msgNoActiveRound), nil
	}

	failed := last.Score.Failed()
	if len(failed) == 0 {
		return toast(msgNothingToRetry), nil
	}

	return h.startPlay(chatID, last.Level, failed, true)
}

func (h *Handler) nextCallback(_ context.Context, chatID int64, _ callbackData) (callbackResult, error) {
	last, ok := h.plays.LastFinished(chatID)
	if !ok {
		return show(renderLevelMenu()), nil
	}

	next, ok := last.Level.Next()
	if !ok {
		return show(renderLevelMenu()), nil
	}

	return show(renderLevelTitle(next)), nil
}

// finishPlay moves a completed play out of the active slot and records it.
// A history failure is logged and never shown to the user.
func (h *Handler) finishPlay(ctx context.Context, chatID int64, play *entities.Play) {
	h.plays.Finish(chatID)

	summary := play.Score.Summary()
	h.logger.Info("round finished",
		zap.Int64("chat_id", chatID),
		zap.Int("level", int(play.Level)),
		zap.Bool("retry", play.IsRetry),
		zap.Int("correct", summary.Correct),
		zap.Int("wrong", summary.Wrong),
	)

	if err := h.historyService.Record(ctx, play.Session); err != nil {
		h.logger.Error("failed to record study session",
			zap.Int64("chat_id", chatID),
			zap.String("session_id", play.Session.ID.String()),
			zap.Error(err),
		)
	}
}
