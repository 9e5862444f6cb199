package handler

import (
	"fmt"
	"math"
	"strings"
	"time"

	"vocablayers/internal/domain"
)

// layerListText builds the layer overview message
func layerListText(layers []domain.Layer) string {
	if len(layers) == 0 {
		return "📚 You have no layers yet.\n\nCreate one to start collecting words."
	}
	return fmt.Sprintf("📚 Your layers (%d):", len(layers))
}

// layerText lists the words of one layer in insertion order
func layerText(layer domain.Layer, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 %s\nCreated: %s\n\n", layer.Name, layer.CreatedString(now))

	if len(layer.Words) == 0 {
		b.WriteString("No words yet.")
		return b.String()
	}

	fmt.Fprintf(&b, "Words (%d):\n", len(layer.Words))
	for i, w := range layer.Words {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, w.Original, w.Translation)
	}
	return strings.TrimRight(b.String(), "\n")
}

// suggestionsText introduces the suggestion buttons for word
func suggestionsText(word string, suggestions []domain.TranslationSuggestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔎 Suggestions for \"%s\":\n\n", word)
	for i, s := range suggestions {
		fmt.Fprintf(&b, "%d. %s — %s", i+1, s.Translation, s.Meaning)
		if s.Context != "" {
			fmt.Fprintf(&b, " (%s)", s.Context)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nPick one or type your own translation.")
	return b.String()
}

// suggestionButtonText labels a suggestion with its confidence
func suggestionButtonText(s domain.TranslationSuggestion) string {
	return fmt.Sprintf("%s · %d%%", s.Translation, percent(s.Confidence))
}

// questionText shows the word at the current session position
func questionText(layer domain.Layer, session domain.GameSession, previous string) string {
	var b strings.Builder
	if previous != "" {
		b.WriteString(previous)
		b.WriteString("\n\n")
	}
	word := layer.Words[session.CurrentGameIndex]
	fmt.Fprintf(&b, "🎮 %s · %d/%d\n\n❓ %s",
		layer.Name, session.CurrentGameIndex+1, len(layer.Words), word.Original)
	return b.String()
}

// answerText reveals the translation of the word just answered
func answerText(word domain.Word, correct bool) string {
	mark := "✅"
	if !correct {
		mark = "❌"
	}
	return fmt.Sprintf("%s %s — %s", mark, word.Original, word.Translation)
}

// resultText summarizes a finished session
func resultText(session domain.GameSession) string {
	return fmt.Sprintf("🏁 Finished!\n\nScore: %d/%d (%d%%)",
		session.Score, session.TotalQuestions, percent(session.Accuracy()))
}

// statsText renders collection statistics
func statsText(stats domain.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Stats\n\nLayers: %d\nWords: %d", stats.Layers, stats.Words)
	if stats.LargestSize > 0 {
		fmt.Fprintf(&b, "\nLargest layer: %s (%d)", stats.LargestLayer, stats.LargestSize)
	}
	if s := stats.ActiveSession; s != nil {
		fmt.Fprintf(&b, "\nGame in progress: %d/%d correct", s.Score, s.TotalQuestions)
	}
	return b.String()
}

func percent(f float64) int {
	return int(math.Round(f * 100))
}
