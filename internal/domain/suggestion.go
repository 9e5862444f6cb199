package domain

// TranslationSuggestion is a candidate translation with a heuristic confidence
type TranslationSuggestion struct {
	Translation string  `json:"translation"`
	Meaning     string  `json:"meaning"`
	Context     string  `json:"context,omitempty"`
	Confidence  float64 `json:"confidence"`
}
