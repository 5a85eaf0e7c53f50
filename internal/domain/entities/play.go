package entities

// Play is the state of a round a chat is currently going through.
type Play struct {
	Level   Level
	IsRetry bool

	// Exactly one of Questions or Cards is set, depending on Level.
	Questions []MultipleChoiceQuestion
	Cards     []Entry

	Index   int // position of the current question or card
	Flipped bool

	SelectedName string    // level 1 name choice, empty until picked
	SelectedType NerveType // level 1 type choice, empty until picked

	Score   *Scorecard
	Session *StudySession
}

// NewMultipleChoicePlay starts a level 1 play over round.
func NewMultipleChoicePlay(chatID int64, round MultipleChoiceRound, isRetry bool) *Play {
	return &Play{
		Level:     Level1,
		IsRetry:   isRetry,
		Questions: round.Questions,
		Score:     NewScorecard(len(round.Questions)),
		Session:   NewStudySession(chatID, Level1, isRetry),
	}
}

// NewCardPlay starts a level 2 or level 3 play over round.
func NewCardPlay(chatID int64, level Level, round ShuffledRound, isRetry bool) *Play {
	return &Play{
		Level:   level,
		IsRetry: isRetry,
		Cards:   round.Entries,
		Score:   NewScorecard(len(round.Entries)),
		Session: NewStudySession(chatID, level, isRetry),
	}
}

// Total returns the number of questions or cards in the round.
func (p *Play) Total() int {
	if p.Level == Level1 {
		return len(p.Questions)
	}
	return len(p.Cards)
}

// Finished reports whether the cursor moved past the last item.
func (p *Play) Finished() bool {
	return p.Index >= p.Total()
}

// CurrentQuestion returns the level 1 question under the cursor.
func (p *Play) CurrentQuestion() (MultipleChoiceQuestion, bool) {
	if p.Level != Level1 || p.Finished() {
		return MultipleChoiceQuestion{}, false
	}
	return p.Questions[p.Index], true
}

// CurrentCard returns the level 2 or level 3 card under the cursor.
func (p *Play) CurrentCard() (Entry, bool) {
	if p.Level == Level1 || p.Finished() {
		return Entry{}, false
	}
	return p.Cards[p.Index], true
}

// ReadyToSubmit reports whether both level 1 choices were made.
func (p *Play) ReadyToSubmit() bool {
	return p.SelectedName != "" && p.SelectedType != ""
}

// SubmitChoice scores the current level 1 question and advances the cursor.
// It returns false when nothing can be submitted.
func (p *Play) SubmitChoice() (isCorrect, ok bool) {
	q, found := p.CurrentQuestion()
	if !found || !p.ReadyToSubmit() {
		return false, false
	}

	isCorrect = q.CheckAnswer(p.SelectedName, p.SelectedType)
	p.Score.Record(q.Entry, isCorrect)
	p.advance()

	return isCorrect, true
}

// ScoreCard records a self-graded card and advances the cursor.
// Cards can only be scored after they were flipped.
func (p *Play) ScoreCard(isCorrect bool) bool {
	card, found := p.CurrentCard()
	if !found || !p.Flipped {
		return false
	}

	p.Score.Record(card, isCorrect)
	p.advance()

	return true
}

func (p *Play) advance() {
	p.Index++
	p.Flipped = false
	p.SelectedName = ""
	p.SelectedType = ""

	if p.Finished() {
		p.Session.Complete(p.Score.Summary(), p.Score.Failed())
	}
}
