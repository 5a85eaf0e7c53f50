package entities

import (
	"fmt"
	"strconv"
)

// Level identifies one of the three study modes.
type Level int

const (
	Level1 Level = iota + 1 // multiple choice
	Level2                  // flash cards
	Level3                  // swallowing roles
)

// Levels lists all levels in play order.
var Levels = []Level{Level1, Level2, Level3}

// ParseLevel parses "1", "2" or "3".
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse level %q: %w", s, err)
	}

	l := Level(n)
	if !l.Valid() {
		return 0, fmt.Errorf("unknown level %d", n)
	}

	return l, nil
}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	return l >= Level1 && l <= Level3
}

// Next returns the following level and false when l is the last one.
func (l Level) Next() (Level, bool) {
	if l >= Level3 {
		return 0, false
	}
	return l + 1, true
}

func (l Level) Title() string {
	return fmt.Sprintf("Level %d", int(l))
}

func (l Level) Subtitle() string {
	switch l {
	case Level1:
		return "Multiple Choice"
	case Level2:
		return "Flash Cards"
	case Level3:
		return "Swallowing Roles"
	default:
		return ""
	}
}

// LevelSummary holds the score of a finished level.
type LevelSummary struct {
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
	Total   int `json:"total"`
}

// Accuracy returns the share of correct answers in percent.
func (s LevelSummary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}
