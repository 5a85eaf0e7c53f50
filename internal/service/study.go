package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// StudyService loads the study guide and builds rounds for the three levels.
type StudyService struct {
	repository EntryRepository
	builder    *RoundBuilder
}

func NewStudyService(repository EntryRepository, builder *RoundBuilder) *StudyService {
	return &StudyService{
		repository: repository,
		builder:    builder,
	}
}

// LoadEntries returns every entry of the study guide in file order.
func (s *StudyService) LoadEntries(ctx context.Context) ([]entities.Entry, error) {
	entries, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	return entries, nil
}

// BuildMultipleChoiceRound builds a level 1 round. Distractors are drawn
// from entries only, so a retry round over failed entries offers fewer options.
func (s *StudyService) BuildMultipleChoiceRound(entries []entities.Entry) (entities.MultipleChoiceRound, error) {
	if len(entries) == 0 {
		return entities.MultipleChoiceRound{}, ErrEmptyInput
	}
	return s.builder.MultipleChoice(entries), nil
}

// BuildShuffledRound builds a level 2 round.
func (s *StudyService) BuildShuffledRound(entries []entities.Entry) (entities.ShuffledRound, error) {
	if len(entries) == 0 {
		return entities.ShuffledRound{}, ErrEmptyInput
	}
	return s.builder.Shuffle(entries), nil
}

// BuildFilteredRound builds a level 3 round. ErrUnavailable is returned
// when no entry has a swallowing role, including for empty input.
func (s *StudyService) BuildFilteredRound(entries []entities.Entry) (entities.ShuffledRound, error) {
	return s.builder.Filtered(entries)
}

// StartPlay builds the round for level over entries and wraps it in a Play.
func (s *StudyService) StartPlay(chatID int64, level entities.Level, entries []entities.Entry, isRetry bool) (*entities.Play, error) {
	switch level {
	case entities.Level1:
		round, err := s.BuildMultipleChoiceRound(entries)
		if err != nil {
			return nil, err
		}
		return entities.NewMultipleChoicePlay(chatID, round, isRetry), nil

	case entities.Level2:
		round, err := s.BuildShuffledRound(entries)
		if err != nil {
			return nil, err
		}
		return entities.NewCardPlay(chatID, level, round, isRetry), nil

	case entities.Level3:
		round, err := s.BuildFilteredRound(entries)
		if err != nil {
			return nil, err
		}
		return entities.NewCardPlay(chatID, level, round, isRetry), nil

	default:
		return nil, fmt.Errorf("unknown level: %d", level)
	}
}
