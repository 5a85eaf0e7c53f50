package service

import (
	"errors"
	"math/rand/v2"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// maxDistractors is the number of wrong names offered next to the correct one.
const maxDistractors = 3

var (
	ErrEmptyInput  = errors.New("no entries available for this level")
	ErrUnavailable = errors.New("no entries with a swallowing role")
)

// RoundBuilder turns a list of entries into quiz rounds.
// It is not safe for concurrent use because it owns its random source.
type RoundBuilder struct {
	rng *rand.Rand
}

// NewRoundBuilder creates a builder drawing from rng.
// A nil rng is replaced by a randomly seeded generator.
func NewRoundBuilder(rng *rand.Rand) *RoundBuilder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RoundBuilder{rng: rng}
}

// MultipleChoice builds a level 1 round: entries in random order, each with
// its own name and up to three other names from entries as options.
func (b *RoundBuilder) MultipleChoice(entries []entities.Entry) entities.MultipleChoiceRound {
	shuffled := b.shuffled(entries)

	allNames := make([]string, 0, len(entries))
	for _, e := range entries {
		allNames = append(allNames, e.Name)
	}

	questions := make([]entities.MultipleChoiceQuestion, 0, len(shuffled))
	for _, entry := range shuffled {
		distractors := b.distractors(allNames, entry.Name, maxDistractors)
		questions = append(questions, entities.MultipleChoiceQuestion{
			Entry:       entry,
			NameOptions: b.buildOptionsWithCorrect(entry.Name, distractors),
		})
	}

	return entities.MultipleChoiceRound{Questions: questions}
}

// Shuffle builds a level 2 round: the same entries in a fresh random order.
func (b *RoundBuilder) Shuffle(entries []entities.Entry) entities.ShuffledRound {
	return entities.ShuffledRound{Entries: b.shuffled(entries)}
}

// Filtered builds a level 3 round from the entries that have a swallowing role.
func (b *RoundBuilder) Filtered(entries []entities.Entry) (entities.ShuffledRound, error) {
	eligible := make([]entities.Entry, 0, len(entries))
	for _, e := range entries {
		if e.HasSwallowingRole() {
			eligible = append(eligible, e)
		}
	}

	if len(eligible) == 0 {
		return entities.ShuffledRound{}, ErrUnavailable
	}

	shuffle(b.rng, eligible)
	return entities.ShuffledRound{Entries: eligible}, nil
}

// distractors draws up to count names other than correct. The pool keeps
// repeated names, so a name listed twice is twice as likely to be drawn, but
// a name is never offered twice in the same question.
func (b *RoundBuilder) distractors(allNames []string, correct string, count int) []string {
	candidates := make([]string, 0, len(allNames))
	for _, name := range allNames {
		if name != correct {
			candidates = append(candidates, name)
		}
	}

	shuffle(b.rng, candidates)

	picked := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	for _, name := range candidates {
		if len(picked) >= count {
			break
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		picked = append(picked, name)
	}

	return picked
}

func (b *RoundBuilder) buildOptionsWithCorrect(correct string, distractors []string) []string {
	options := make([]string, 0, 1+len(distractors))
	options = append(options, correct)
	options = append(options, distractors...)

	shuffle(b.rng, options)
	return options
}

// shuffled returns a shuffled copy; the caller's slice is left untouched.
func (b *RoundBuilder) shuffled(entries []entities.Entry) []entities.Entry {
	out := make([]entities.Entry, len(entries))
	copy(out, entries)
	shuffle(b.rng, out)
	return out
}

func shuffle[T any](rng *rand.Rand, s []T) {
	rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
