package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/cranial-nerves-bot/internal/dataset"
	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

func writeGuide(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guide.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewEntryRepository_Embedded(t *testing.T) {
	repo, err := NewEntryRepository("")
	require.NoError(t, err)

	entries, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 12)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Order)
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.Function)
	}

	assert.Empty(t, entries[0].SwallowingRole, "olfactory has no swallowing role")
	assert.Equal(t, entities.NerveBoth, entries[9].Type)
	assert.True(t, entries[9].HasSwallowingRole())
}

func TestNewEntryRepository_FromPath(t *testing.T) {
	path := writeGuide(t, "name,type,function,role_in_swallowing\nVagus,both,Parasympathetic,Pharyngeal phase\n")

	repo, err := NewEntryRepository(path)
	require.NoError(t, err)
	assert.Equal(t, path, repo.Source())

	entries, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Pharyngeal phase", entries[0].SwallowingRole)
}

func TestNewEntryRepository_Errors(t *testing.T) {
	_, err := NewEntryRepository(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewEntryRepository(writeGuide(t, "type,function\nmotor,Tongue\n"))
	var colErr *dataset.MissingColumnError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "name", colErr.Column)

	_, err = NewEntryRepository(writeGuide(t, "name,type,function\n"))
	assert.ErrorIs(t, err, ErrNoEntries)
}

func TestEntryRepository_GetAllReturnsCopy(t *testing.T) {
	repo, err := NewEntryRepository("")
	require.NoError(t, err)

	first, _ := repo.GetAll(context.Background())
	first[0].Name = "changed"

	second, _ := repo.GetAll(context.Background())
	assert.NotEqual(t, "changed", second[0].Name)
}

func TestEntryRepository_Reload(t *testing.T) {
	path := writeGuide(t, "name,type,function\nOptic,sensory,Vision\n")

	repo, err := NewEntryRepository(path)
	require.NoError(t, err)
	assert.True(t, repo.Reloadable())

	require.NoError(t, os.WriteFile(path, []byte("name,type,function\nOptic,sensory,Vision\nHypoglossal,motor,Tongue\n"), 0o600))

	n, err := repo.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, _ := repo.GetAll(context.Background())
	require.Len(t, entries, 2)
	assert.Equal(t, "Hypoglossal", entries[1].Name)

	// A broken file keeps the previous entries.
	require.NoError(t, os.WriteFile(path, []byte("name,type,function\nVagus,mixed,Swallow\n"), 0o600))

	_, err = repo.Reload(context.Background())
	var valErr *dataset.InvalidValueError
	require.ErrorAs(t, err, &valErr)

	entries, _ = repo.GetAll(context.Background())
	assert.Len(t, entries, 2)
}

func TestEntryRepository_EmbeddedIsNotReloadable(t *testing.T) {
	repo, err := NewEntryRepository("")
	require.NoError(t, err)
	assert.False(t, repo.Reloadable())
}
