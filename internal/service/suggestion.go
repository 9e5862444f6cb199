package service

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"vocablayers/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxSuggestions = 3

// asciiDigits mark a word as a number or code; other scripts' digits do not
const asciiDigits = "0123456789"

// SuggestionEngine proposes translations for a word. It keeps no mutable
// state, so any number of callers may use it concurrently.
type SuggestionEngine struct {
	delay  time.Duration
	logger *zap.Logger
}

// NewSuggestionEngine creates an engine that waits delay before answering
func NewSuggestionEngine(delay time.Duration, logger *zap.Logger) *SuggestionEngine {
	return &SuggestionEngine{
		delay:  delay,
		logger: logger,
	}
}

// Suggest returns ranked translation suggestions for word
func (e *SuggestionEngine) Suggest(word string) []domain.TranslationSuggestion {
	if e.delay > 0 {
		time.Sleep(e.delay)
	}

	trimmed := strings.TrimSpace(word)
	normalized := cases.Lower(language.Und).String(trimmed)

	if known, ok := builtinSuggestions[normalized]; ok {
		e.logger.Debug("Suggestions from built-in table", zap.String("word", normalized))
		out := make([]domain.TranslationSuggestion, len(known))
		copy(out, known)
		return out
	}

	e.logger.Debug("Generating fallback suggestions", zap.String("word", normalized))
	return fallbackSuggestions(trimmed, normalized)
}

// fallbackSuggestions builds heuristic suggestions for an unknown word.
// original keeps its case; normalized is lowercase.
func fallbackSuggestions(original, normalized string) []domain.TranslationSuggestion {
	var suggestions []domain.TranslationSuggestion

	if first, _ := utf8.DecodeRuneInString(original); unicode.IsUpper(first) {
		suggestions = append(suggestions, domain.TranslationSuggestion{
			Translation: original,
			Meaning:     "Maxsus ism (tarjima qilinmaydi)",
			Context:     "Ism, familiya yoki joy nomi",
			Confidence:  0.90,
		})
	}

	if strings.ContainsAny(normalized, asciiDigits) {
		suggestions = append(suggestions, domain.TranslationSuggestion{
			Translation: normalized,
			Meaning:     "Raqam yoki kod",
			Context:     "Texnik atama",
			Confidence:  0.85,
		})
	}

	suggestions = append(suggestions,
		domain.TranslationSuggestion{
			Translation: normalized,
			Meaning:     "To'g'ridan-to'g'ri tarjima",
			Context:     "Xalqaro so'z",
			Confidence:  0.70,
		},
		domain.TranslationSuggestion{
			Translation: normalized + " (inglizcha)",
			Meaning:     "Inglizcha atama",
			Context:     "Tarjimasiz ishlatiladi",
			Confidence:  0.65,
		},
	)

	if utf8.RuneCountInString(normalized) > 3 {
		suggestions = append(suggestions, domain.TranslationSuggestion{
			Translation: phonetic(normalized),
			Meaning:     "Talaffuzga yaqin yozuv",
			Context:     "Yangi so'z",
			Confidence:  0.60,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// phonetic applies phoneticRules to a lowercase word
func phonetic(word string) string {
	for _, rule := range phoneticRules {
		word = strings.ReplaceAll(word, rule[0], rule[1])
	}
	return word
}
