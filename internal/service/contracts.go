package service

import (
	"context"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// EntryRepository provides the study guide entries.
type EntryRepository interface {
	GetAll(ctx context.Context) ([]entities.Entry, error)
}

// HistoryRepository persists finished study sessions.
type HistoryRepository interface {
	SaveSession(ctx context.Context, s *entities.StudySession) error
	GetStats(ctx context.Context, chatID int64) ([]entities.LevelStats, error)
}
