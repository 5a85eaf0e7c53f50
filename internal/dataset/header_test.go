package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"byte order mark", "\ufeffName", "name"},
		{"misspelled function", " Fuction ", "function"},
		{"role with spaces", "role in swallowing", "roleinswallowing"},
		{"role with underscores", "role_in_swallowing", "roleinswallowing"},
		{"mixed case type", "TYPE", "type"},
		{"unknown column kept", "Notes Column", "notescolumn"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHeader(tt.header))
		})
	}
}

func TestNormalizeHeader_Idempotent(t *testing.T) {
	for _, h := range []string{"\ufeffName", " Fuction ", "role in swallowing", "Role_In_Swallowing", "Type"} {
		once := NormalizeHeader(h)
		assert.Equal(t, once, NormalizeHeader(once), "header %q", h)
	}
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, "", NormalizeRole(""))
	assert.Equal(t, "", NormalizeRole("   "))
	assert.Equal(t, "", NormalizeRole("none"))
	assert.Equal(t, "", NormalizeRole(" NONE "))
	assert.Equal(t, "Pharyngeal phase", NormalizeRole("  Pharyngeal phase "))
	assert.Equal(t, "None of the above", NormalizeRole("None of the above"))

	once := NormalizeRole("  Oral phase ")
	assert.Equal(t, once, NormalizeRole(once))
}
