package entities

// MultipleChoiceQuestion asks for the nerve matching Entry.Function.
// NameOptions always contains Entry.Name exactly once.
type MultipleChoiceQuestion struct {
	Entry       Entry    `json:"entry"`
	NameOptions []string `json:"name_options"`
}

// CheckAnswer reports whether the selected name and type both match the entry.
func (q MultipleChoiceQuestion) CheckAnswer(name string, nerveType NerveType) bool {
	return name == q.Entry.Name && nerveType == q.Entry.Type
}

// MultipleChoiceRound is a level 1 round.
type MultipleChoiceRound struct {
	Questions []MultipleChoiceQuestion `json:"questions"`
}

// ShuffledRound is a level 2 or level 3 round of flash cards.
type ShuffledRound struct {
	Entries []Entry `json:"entries"`
}
