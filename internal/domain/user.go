package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle               UserState = "idle"
	StateWaitingLayerName   UserState = "waiting_layer_name"
	StateWaitingWord        UserState = "waiting_word"
	StateWaitingTranslation UserState = "waiting_translation"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State       UserState
	LayerID     string
	CurrentWord string
	Suggestions []TranslationSuggestion // Offered for CurrentWord
}
