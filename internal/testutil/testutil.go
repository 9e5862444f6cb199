package testutil

import (
	"fmt"
	"sync"
	"time"

	"vocablayers/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewSequentialIDs returns a generator producing "id-1", "id-2", ...
func NewSequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// FixedClock returns a clock that always reports t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewTestLayer creates a test layer with the given words
func NewTestLayer(id, name string, words ...domain.Word) domain.Layer {
	if words == nil {
		words = []domain.Word{}
	}
	return domain.Layer{
		ID:        id,
		Name:      name,
		Words:     words,
		CreatedAt: time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
	}
}

// NewTestWord creates a test word
func NewTestWord(id, original, translation string) domain.Word {
	return domain.Word{
		ID:          id,
		Original:    original,
		Translation: translation,
	}
}
