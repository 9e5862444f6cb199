package service

import (
	"testing"
	"time"

	"vocablayers/internal/domain"
	"vocablayers/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func newTestEngine() *SuggestionEngine {
	return NewSuggestionEngine(0, testutil.NewTestLogger())
}

func confidences(suggestions []domain.TranslationSuggestion) []float64 {
	out := make([]float64, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Confidence
	}
	return out
}

func TestSuggestionEngine_BuiltinTable(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "exact word",
			input:    "hello",
			expected: []string{"salom", "assalomu alaykum", "qalaysiz"},
		},
		{
			name:     "mixed case with whitespace",
			input:    "  HeLLo \n",
			expected: []string{"salom", "assalomu alaykum", "qalaysiz"},
		},
		{
			name:     "multi word entry",
			input:    "Thank you",
			expected: []string{"rahmat", "tashakkur", "katta rahmat"},
		},
	}

	engine := newTestEngine()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := engine.Suggest(tt.input)

			var got []string
			for _, s := range suggestions {
				got = append(got, s.Translation)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSuggestionEngine_BuiltinOrderIsNotSorted(t *testing.T) {
	suggestions := newTestEngine().Suggest("water")

	assert.Equal(t, []float64{0.95, 0.70, 0.75}, confidences(suggestions))
}

func TestSuggestionEngine_BuiltinResultIsACopy(t *testing.T) {
	engine := newTestEngine()

	first := engine.Suggest("book")
	first[0].Translation = "changed"

	second := engine.Suggest("book")
	assert.Equal(t, "kitob", second[0].Translation)
}

func TestSuggestionEngine_Fallback(t *testing.T) {
	tests := []struct {
		name                 string
		input                string
		expectedConfidences  []float64
		expectedTranslations []string
	}{
		{
			name:                 "capitalized with digits",
			input:                "Tashkent123",
			expectedConfidences:  []float64{0.90, 0.85, 0.70},
			expectedTranslations: []string{"Tashkent123", "tashkent123", "tashkent123"},
		},
		{
			name:                 "plain unknown word",
			input:                "nation",
			expectedConfidences:  []float64{0.70, 0.65, 0.60},
			expectedTranslations: []string{"nation", "nation (inglizcha)", "nasiya"},
		},
		{
			name:                 "short word has no phonetic entry",
			input:                "cat",
			expectedConfidences:  []float64{0.70, 0.65},
			expectedTranslations: []string{"cat", "cat (inglizcha)"},
		},
		{
			name:                 "single uppercase letter",
			input:                "X",
			expectedConfidences:  []float64{0.90, 0.70, 0.65},
			expectedTranslations: []string{"X", "x", "x (inglizcha)"},
		},
		{
			name:                 "digits only",
			input:                "42",
			expectedConfidences:  []float64{0.85, 0.70, 0.65},
			expectedTranslations: []string{"42", "42", "42 (inglizcha)"},
		},
		{
			name:                 "non-ASCII digits are not numeric",
			input:                "١٢٣x",
			expectedConfidences:  []float64{0.70, 0.65, 0.60},
			expectedTranslations: []string{"١٢٣x", "١٢٣x (inglizcha)", "١٢٣x"},
		},
		{
			name:                 "empty input",
			input:                "",
			expectedConfidences:  []float64{0.70, 0.65},
			expectedTranslations: []string{"", " (inglizcha)"},
		},
		{
			name:                 "whitespace only",
			input:                "   ",
			expectedConfidences:  []float64{0.70, 0.65},
			expectedTranslations: []string{"", " (inglizcha)"},
		},
	}

	engine := newTestEngine()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions := engine.Suggest(tt.input)

			require.NotEmpty(t, suggestions)
			assert.LessOrEqual(t, len(suggestions), maxSuggestions)
			assert.Equal(t, tt.expectedConfidences, confidences(suggestions))

			var got []string
			for _, s := range suggestions {
				got = append(got, s.Translation)
			}
			assert.Equal(t, tt.expectedTranslations, got)
		})
	}
}

func TestPhonetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "photography", expected: "fotografy"},
		{input: "theory", expected: "teory"},
		{input: "nation", expected: "nasiya"},
		{input: "television", expected: "televisiya"},
		{input: "picture", expected: "pictur"},
		{input: "quality", expected: "quallik"},
		{input: "church", expected: "church"},
		{input: "fish", expected: "fish"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, phonetic(tt.input))
		})
	}
}

func TestSuggestionEngine_ConcurrentCallers(t *testing.T) {
	defer goleak.VerifyNone(t)

	engine := NewSuggestionEngine(5*time.Millisecond, testutil.NewTestLogger())
	words := []string{"hello", "Tashkent123", "", "friend", "nation", "X"}

	results := make([][]domain.TranslationSuggestion, len(words))
	var g errgroup.Group
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			results[i] = engine.Suggest(w)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, w := range words {
		assert.Equal(t, newTestEngine().Suggest(w), results[i], "word %q", w)
	}
}

func TestSuggestionEngine_Delay(t *testing.T) {
	engine := NewSuggestionEngine(20*time.Millisecond, testutil.NewTestLogger())

	start := time.Now()
	engine.Suggest("hello")

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
