package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNerveType(t *testing.T) {
	tests := []struct {
		in      string
		want    NerveType
		wantErr error
	}{
		{"sensory", NerveSensory, nil},
		{"Sensory", NerveSensory, nil},
		{" MOTOR ", NerveMotor, nil},
		{"Both", NerveBoth, nil},
		{"", "", ErrNerveTypeEmpty},
		{"   ", "", ErrNerveTypeEmpty},
		{"mixed", "", ErrNerveTypeInvalid},
		{"sensory/motor", "", ErrNerveTypeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNerveType(tt.in)
			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNerveType_Label(t *testing.T) {
	assert.Equal(t, "Sensory", NerveSensory.Label())
	assert.Equal(t, "Motor", NerveMotor.Label())
	assert.Equal(t, "Both", NerveBoth.Label())
}

func TestEntry_HasSwallowingRole(t *testing.T) {
	assert.False(t, Entry{}.HasSwallowingRole())
	assert.False(t, Entry{SwallowingRole: "  "}.HasSwallowingRole())
	assert.True(t, Entry{SwallowingRole: "Pharyngeal phase"}.HasSwallowingRole())
}

func TestMultipleChoiceQuestion_CheckAnswer(t *testing.T) {
	q := MultipleChoiceQuestion{
		Entry:       Entry{Name: "Vagus", Type: NerveBoth},
		NameOptions: []string{"Vagus", "Facial"},
	}

	assert.True(t, q.CheckAnswer("Vagus", NerveBoth))
	assert.False(t, q.CheckAnswer("Vagus", NerveMotor), "right name, wrong type")
	assert.False(t, q.CheckAnswer("Facial", NerveBoth), "wrong name, right type")
}
