package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionMenu   = "menu"
	actionLevel  = "level"
	actionStart  = "start"
	actionChoice = "mc"
	actionCard   = "card"
	actionRetry  = "retry"
	actionNext   = "next"
)

// Multiple choice sub-actions.
const (
	choiceName   = "name"
	choiceType   = "type"
	choiceSubmit = "submit"
)

// Flash card sub-actions.
const (
	cardFlip  = "flip"
	cardScore = "score"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildMenuCallback() string {
	return actionMenu
}

// buildLevelCallback builds callback data for opening a level title screen.
func buildLevelCallback(level entities.Level) string {
	return callbackData{
		Action: actionLevel,
		Params: []string{strconv.Itoa(int(level))},
	}.encode()
}

// buildStartCallback builds callback data for starting a level round.
func buildStartCallback(level entities.Level) string {
	return callbackData{
		Action: actionStart,
		Params: []string{strconv.Itoa(int(level))},
	}.encode()
}

// buildChoiceNameCallback builds callback data for picking the option at index i.
func buildChoiceNameCallback(i int) string {
	return callbackData{
		Action: actionChoice,
		Params: []string{choiceName, strconv.Itoa(i)},
	}.encode()
}

func buildChoiceTypeCallback(t entities.NerveType) string {
	return callbackData{
		Action: actionChoice,
		Params: []string{choiceType, string(t)},
	}.encode()
}

func buildChoiceSubmitCallback() string {
	return callbackData{
		Action: actionChoice,
		Params: []string{choiceSubmit},
	}.encode()
}

func buildCardFlipCallback() string {
	return callbackData{
		Action: actionCard,
		Params: []string{cardFlip},
	}.encode()
}

// buildCardScoreCallback builds callback data for self-grading a flipped card.
func buildCardScoreCallback(isCorrect bool) string {
	v := "0"
	if isCorrect {
		v = "1"
	}
	return callbackData{
		Action: actionCard,
		Params: []string{cardScore, v},
	}.encode()
}

func buildRetryCallback() string {
	return actionRetry
}

func buildNextCallback() string {
	return actionNext
}
