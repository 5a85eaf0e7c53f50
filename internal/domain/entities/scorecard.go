package entities

// Scorecard tallies the answers of one round.
type Scorecard struct {
	total   int
	correct int
	wrong   int
	failed  []Entry
}

// NewScorecard creates a scorecard for a round of total questions.
func NewScorecard(total int) *Scorecard {
	return &Scorecard{total: total}
}

// Record stores the outcome for entry. Wrong answers are kept for a retry round.
func (s *Scorecard) Record(entry Entry, isCorrect bool) {
	if isCorrect {
		s.correct++
		return
	}
	s.wrong++
	s.failed = append(s.failed, entry)
}

func (s *Scorecard) Summary() LevelSummary {
	return LevelSummary{
		Correct: s.correct,
		Wrong:   s.wrong,
		Total:   s.total,
	}
}

// Failed returns the wrongly answered entries in answer order.
func (s *Scorecard) Failed() []Entry {
	out := make([]Entry, len(s.failed))
	copy(out, s.failed)
	return out
}
