package storage

import (
	"sync"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// PlayStorage provides in-memory storage for the round each chat is playing.
type PlayStorage struct {
	mu    sync.RWMutex
	plays map[int64]*entities.Play
	last  map[int64]*entities.Play
}

// NewPlayStorage creates a new PlayStorage.
func NewPlayStorage() *PlayStorage {
	return &PlayStorage{
		plays: make(map[int64]*entities.Play),
		last:  make(map[int64]*entities.Play),
	}
}

// Store makes play the active round of chatID, replacing any previous one.
func (s *PlayStorage) Store(chatID int64, play *entities.Play) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plays[chatID] = play
}

// Get returns the active round of chatID.
func (s *PlayStorage) Get(chatID int64) (*entities.Play, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.plays[chatID]
	return p, ok
}

// Finish moves the active round of chatID to the finished slot, where it
// stays available for a retry or a move to the next level.
func (s *PlayStorage) Finish(chatID int64) (*entities.Play, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plays[chatID]
	if !ok {
		return nil, false
	}
	delete(s.plays, chatID)
	s.last[chatID] = p

	return p, true
}

// LastFinished returns the most recently finished round of chatID.
func (s *PlayStorage) LastFinished(chatID int64) (*entities.Play, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.last[chatID]
	return p, ok
}

// Delete removes both the active and the finished round of chatID.
func (s *PlayStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plays, chatID)
	delete(s.last, chatID)
}
