package service

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

func sampleEntry(name string, t entities.NerveType, function, role string, order int) entities.Entry {
	return entities.Entry{
		Name:           name,
		Type:           t,
		Function:       function,
		SwallowingRole: role,
		Order:          order,
	}
}

func sampleEntries() []entities.Entry {
	return []entities.Entry{
		sampleEntry("I", entities.NerveSensory, "Smell", "", 1),
		sampleEntry("II", entities.NerveSensory, "Vision", "", 2),
		sampleEntry("III", entities.NerveMotor, "Eye movement", "", 3),
		sampleEntry("IV", entities.NerveMotor, "Eye movement", "", 4),
		sampleEntry("V", entities.NerveBoth, "Face", "Oral phase", 5),
	}
}

func newTestBuilder(seed uint64) *RoundBuilder {
	return NewRoundBuilder(rand.New(rand.NewPCG(seed, seed*31+7)))
}

func distinctNames(entries []entities.Entry) int {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.Name] = struct{}{}
	}
	return len(seen)
}

func assertPermutation(t *testing.T, want, got []entities.Entry) {
	t.Helper()
	require.Len(t, got, len(want))
	assert.ElementsMatch(t, want, got)
}

func TestRoundBuilder_MultipleChoice_Properties(t *testing.T) {
	inputs := map[string][]entities.Entry{
		"single":     sampleEntries()[:1],
		"two":        sampleEntries()[:2],
		"five":       sampleEntries(),
		"duplicates": append(sampleEntries(), sampleEntry("II", entities.NerveSensory, "Vision again", "", 6)),
	}

	for name, entries := range inputs {
		for seed := uint64(1); seed <= 20; seed++ {
			t.Run(fmt.Sprintf("%s/seed=%d", name, seed), func(t *testing.T) {
				round := newTestBuilder(seed).MultipleChoice(entries)
				require.Len(t, round.Questions, len(entries))

				got := make([]entities.Entry, 0, len(round.Questions))
				for _, q := range round.Questions {
					got = append(got, q.Entry)

					assert.Contains(t, q.NameOptions, q.Entry.Name)
					assert.GreaterOrEqual(t, len(q.NameOptions), 1)
					assert.LessOrEqual(t, len(q.NameOptions), 4)
					assert.LessOrEqual(t, len(q.NameOptions), distinctNames(entries)+1)

					seen := make(map[string]int)
					for _, opt := range q.NameOptions {
						seen[opt]++
					}
					for opt, n := range seen {
						assert.Equal(t, 1, n, "option %q repeated", opt)
					}
				}
				assertPermutation(t, entries, got)
			})
		}
	}
}

func TestRoundBuilder_MultipleChoice_OptionCount(t *testing.T) {
	b := newTestBuilder(42)

	round := b.MultipleChoice(sampleEntries())
	for _, q := range round.Questions {
		assert.Len(t, q.NameOptions, 4, "five distinct names leave three distractors")
	}

	round = b.MultipleChoice(sampleEntries()[:3])
	for _, q := range round.Questions {
		assert.Len(t, q.NameOptions, 3)
	}

	round = b.MultipleChoice(sampleEntries()[:1])
	require.Len(t, round.Questions, 1)
	assert.Equal(t, []string{"I"}, round.Questions[0].NameOptions)
}

func TestRoundBuilder_MultipleChoice_RetrySubset(t *testing.T) {
	entries := sampleEntries()
	failed := []entities.Entry{entries[1], entries[2]}

	round := newTestBuilder(7).MultipleChoice(failed)
	require.Len(t, round.Questions, len(failed))

	for _, q := range round.Questions {
		assert.ElementsMatch(t, []string{"II", "III"}, q.NameOptions, "distractors come from the subset only")
	}
}

func TestRoundBuilder_MultipleChoice_DoesNotMutateInput(t *testing.T) {
	entries := sampleEntries()
	before := append([]entities.Entry(nil), entries...)

	_ = newTestBuilder(3).MultipleChoice(entries)
	assert.Equal(t, before, entries)
}

func TestRoundBuilder_Shuffle(t *testing.T) {
	entries := sampleEntries()
	before := append([]entities.Entry(nil), entries...)

	for seed := uint64(1); seed <= 10; seed++ {
		round := newTestBuilder(seed).Shuffle(entries)
		assertPermutation(t, entries, round.Entries)
	}
	assert.Equal(t, before, entries)
}

func TestRoundBuilder_Shuffle_ChangesOrder(t *testing.T) {
	entries := sampleEntries()
	b := newTestBuilder(11)

	changed := false
	for i := 0; i < 50 && !changed; i++ {
		round := b.Shuffle(entries)
		for j := range entries {
			if round.Entries[j] != entries[j] {
				changed = true
				break
			}
		}
	}
	assert.True(t, changed, "fifty shuffles of five entries never reordered them")
}

func TestRoundBuilder_Filtered(t *testing.T) {
	entries := []entities.Entry{
		sampleEntry("I", entities.NerveSensory, "Smell", "", 1),
		sampleEntry("IX", entities.NerveBoth, "Taste", "Pharyngeal phase", 2),
	}

	round, err := newTestBuilder(1).Filtered(entries)
	require.NoError(t, err)
	require.Len(t, round.Entries, 1)
	assert.Equal(t, "IX", round.Entries[0].Name)
}

func TestRoundBuilder_Filtered_Mixed(t *testing.T) {
	entries := append(sampleEntries(),
		sampleEntry("X", entities.NerveBoth, "Parasympathetic", "Pharyngeal phase", 6),
		sampleEntry("XII", entities.NerveMotor, "Tongue", "  ", 7),
	)

	round, err := newTestBuilder(5).Filtered(entries)
	require.NoError(t, err)
	require.Len(t, round.Entries, 2)
	for _, e := range round.Entries {
		assert.True(t, e.HasSwallowingRole())
	}
	assert.ElementsMatch(t, []string{"V", "X"}, []string{round.Entries[0].Name, round.Entries[1].Name})
}

func TestRoundBuilder_Filtered_Unavailable(t *testing.T) {
	b := newTestBuilder(1)

	_, err := b.Filtered([]entities.Entry{sampleEntry("I", entities.NerveSensory, "Smell", "", 1)})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = b.Filtered(nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewRoundBuilder_NilSource(t *testing.T) {
	b := NewRoundBuilder(nil)
	round := b.Shuffle(sampleEntries())
	assertPermutation(t, sampleEntries(), round.Entries)
}
