package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

func TestFormatLevelTitle(t *testing.T) {
	for _, level := range entities.Levels {
		text := formatLevelTitle(level)

		assert.True(t, strings.HasPrefix(text, bold(level.Title())+"\n"+italic(level.Subtitle())))
		// The screen ends with the level's own instructions.
		assert.True(t, strings.HasSuffix(text, esc(levelDescriptions[level])), "level %d", level)
	}
}
