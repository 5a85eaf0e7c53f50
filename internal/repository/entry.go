package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/aliskhannn/cranial-nerves-bot/assets"
	"github.com/aliskhannn/cranial-nerves-bot/internal/dataset"
	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

var ErrNoEntries = errors.New("study guide has no entries")

// EntryRepository provides access to the cranial nerve study guide.
// The guide is parsed up front and kept in memory until the next Reload.
type EntryRepository struct {
	mu      sync.RWMutex
	entries []entities.Entry
	path    string
	source  string
}

// NewEntryRepository loads the study guide from path, or from the embedded
// copy when path is empty.
func NewEntryRepository(path string) (*EntryRepository, error) {
	entries, source, err := loadGuide(path)
	if err != nil {
		return nil, err
	}

	return &EntryRepository{
		entries: entries,
		path:    path,
		source:  source,
	}, nil
}

// GetAll returns a copy of all entries in file order.
func (r *EntryRepository) GetAll(_ context.Context) ([]entities.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// Reload re-reads the study guide from its source and returns the new
// entry count. On error the previously loaded entries stay in place.
func (r *EntryRepository) Reload(_ context.Context) (int, error) {
	entries, _, err := loadGuide(r.path)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = entries

	return len(entries), nil
}

// Reloadable reports whether the guide comes from a file that can change.
func (r *EntryRepository) Reloadable() bool {
	return r.path != ""
}

// Source describes where the guide was read from.
func (r *EntryRepository) Source() string {
	return r.source
}

func loadGuide(path string) ([]entities.Entry, string, error) {
	data, source, err := readGuide(path)
	if err != nil {
		return nil, "", err
	}

	entries, err := dataset.Load(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("parse study guide %s: %w", source, err)
	}

	if len(entries) == 0 {
		return nil, "", fmt.Errorf("%s: %w", source, ErrNoEntries)
	}

	return entries, source, nil
}

func readGuide(path string) ([]byte, string, error) {
	if path == "" {
		return assets.CranialNervesCSV, "embedded study guide", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read study guide: %w", err)
	}

	return data, path, nil
}
