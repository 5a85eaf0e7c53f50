package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

func TestCallbackBuilders(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{buildMenuCallback(), "menu"},
		{buildLevelCallback(entities.Level2), "level:2"},
		{buildStartCallback(entities.Level3), "start:3"},
		{buildChoiceNameCallback(3), "mc:name:3"},
		{buildChoiceTypeCallback(entities.NerveBoth), "mc:type:both"},
		{buildChoiceSubmitCallback(), "mc:submit"},
		{buildCardFlipCallback(), "card:flip"},
		{buildCardScoreCallback(true), "card:score:1"},
		{buildCardScoreCallback(false), "card:score:0"},
		{buildRetryCallback(), "retry"},
		{buildNextCallback(), "next"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got)
		// Telegram rejects callback data longer than 64 bytes.
		assert.LessOrEqual(t, len(tt.got), 64)
	}
}

func TestDecodeCallback(t *testing.T) {
	cd := decodeCallback("mc:name:2")
	assert.Equal(t, actionChoice, cd.Action)
	assert.Equal(t, []string{choiceName, "2"}, cd.Params)
	assert.Equal(t, "mc:name:2", cd.Raw)
	assert.Equal(t, "2", cd.param(1))
	assert.Equal(t, "", cd.param(2))
	assert.Equal(t, "", cd.param(-1))

	cd = decodeCallback("retry")
	assert.Equal(t, actionRetry, cd.Action)
	assert.Empty(t, cd.Params)
	assert.Equal(t, "retry", cd.encode())
}

func TestFormatEscapesDatasetText(t *testing.T) {
	play := &entities.Play{
		Level: entities.Level2,
		Cards: []entities.Entry{{Name: "Facial <VII>", Type: entities.NerveBoth, Function: "Taste & expression"}},
		Score: entities.NewScorecard(1),
	}

	front := formatCard(play, play.Cards[0])
	assert.Contains(t, front, "<b>Facial &lt;VII&gt;</b>")
	assert.NotContains(t, front, "Taste")

	play.Flipped = true
	back := formatCard(play, play.Cards[0])
	assert.Contains(t, back, "Taste &amp; expression")
	assert.Contains(t, back, "Both")
}
