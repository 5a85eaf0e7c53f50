package entities

import (
	"time"

	"github.com/google/uuid"
)

// StudySession is a finished level attempt recorded in the history.
// It tracks the chat, level, score, missed names and timestamps.
type StudySession struct {
	ID          uuid.UUID // unique session ID
	ChatID      int64     // chat the round was played in
	Level       Level     // level that was played
	IsRetry     bool      // true when the round only contained previously failed entries
	Summary     LevelSummary
	Missed      []string  // names answered wrong, in answer order
	StartedAt   time.Time // when the round was built
	CompletedAt time.Time // when the last answer was given
}

// NewStudySession creates a session for a round that starts now.
func NewStudySession(chatID int64, level Level, isRetry bool) *StudySession {
	return &StudySession{
		ID:        uuid.New(),
		ChatID:    chatID,
		Level:     level,
		IsRetry:   isRetry,
		StartedAt: time.Now().UTC(),
	}
}

// Complete stores the final score and marks the completion time.
func (s *StudySession) Complete(summary LevelSummary, failed []Entry) {
	s.Summary = summary
	s.Missed = make([]string, 0, len(failed))
	for _, e := range failed {
		s.Missed = append(s.Missed, e.Name)
	}
	s.CompletedAt = time.Now().UTC()
}

// LevelStats aggregates the history of one level for a chat.
type LevelStats struct {
	Level    Level
	Sessions int
	Correct  int
	Wrong    int
}
