package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

var ErrHistoryDisabled = errors.New("study history is disabled")

// HistoryService records finished sessions. With a nil repository it
// accepts sessions without storing them.
type HistoryService struct {
	repository HistoryRepository
}

func NewHistoryService(repository HistoryRepository) *HistoryService {
	return &HistoryService{repository: repository}
}

// Enabled reports whether sessions are persisted.
func (s *HistoryService) Enabled() bool {
	return s.repository != nil
}

// Record saves a completed session.
func (s *HistoryService) Record(ctx context.Context, session *entities.StudySession) error {
	if s.repository == nil {
		return nil
	}
	if session.CompletedAt.IsZero() {
		return fmt.Errorf("record session %s: session is not completed", session.ID)
	}

	if err := s.repository.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("record session %s: %w", session.ID, err)
	}
	return nil
}

// Stats returns per-level totals for chatID. Levels never played are
// reported with zero counts.
func (s *HistoryService) Stats(ctx context.Context, chatID int64) ([]entities.LevelStats, error) {
	if s.repository == nil {
		return nil, ErrHistoryDisabled
	}

	stored, err := s.repository.GetStats(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	byLevel := make(map[entities.Level]entities.LevelStats, len(stored))
	for _, st := range stored {
		byLevel[st.Level] = st
	}

	stats := make([]entities.LevelStats, 0, len(entities.Levels))
	for _, l := range entities.Levels {
		st, ok := byLevel[l]
		if !ok {
			st = entities.LevelStats{Level: l}
		}
		stats = append(stats, st)
	}

	return stats, nil
}
