package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// BotAPI is the subset of *tgbotapi.BotAPI used by the handler.
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type StudyService interface {
	LoadEntries(ctx context.Context) ([]entities.Entry, error)
	StartPlay(chatID int64, level entities.Level, entries []entities.Entry, isRetry bool) (*entities.Play, error)
}

type HistoryService interface {
	Record(ctx context.Context, session *entities.StudySession) error
	Stats(ctx context.Context, chatID int64) ([]entities.LevelStats, error)
}

type PlayStorage interface {
	Store(chatID int64, play *entities.Play)
	Get(chatID int64) (*entities.Play, bool)
	Finish(chatID int64) (*entities.Play, bool)
	LastFinished(chatID int64) (*entities.Play, bool)
	Delete(chatID int64)
}
