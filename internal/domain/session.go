package domain

// GameType identifies a practice game variant
type GameType string

const (
	GameMatching       GameType = "matching"
	GameMultipleChoice GameType = "multipleChoice"
	GameTyping         GameType = "typing"
	GameFlashcards     GameType = "flashcards"
	GameTrueFalse      GameType = "trueFalse"
)

// GameTypes lists game variants in the order a session cycles through them
var GameTypes = []GameType{
	GameMatching,
	GameMultipleChoice,
	GameTyping,
	GameFlashcards,
	GameTrueFalse,
}

// GameSession tracks progress of one practice run over a layer.
// Score never exceeds TotalQuestions.
type GameSession struct {
	LayerID          string `json:"layerId"`
	CurrentGameIndex int    `json:"currentGameIndex"`
	Score            int    `json:"score"`
	TotalQuestions   int    `json:"totalQuestions"`
}

// CurrentGameType returns the game variant for the current index
func (s GameSession) CurrentGameType() GameType {
	return GameTypes[s.CurrentGameIndex%len(GameTypes)]
}

// Accuracy returns the share of correct answers, 0 if nothing was answered
func (s GameSession) Accuracy() float64 {
	if s.TotalQuestions == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.TotalQuestions)
}
