package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLayer_CreatedString(t *testing.T) {
	now := time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		expected  string
	}{
		{
			name:      "today",
			createdAt: now.Add(-time.Hour),
			expected:  "Today",
		},
		{
			name:      "yesterday",
			createdAt: now.AddDate(0, 0, -1),
			expected:  "Yesterday",
		},
		{
			name:      "specific date",
			createdAt: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			expected:  "15 Jun 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := Layer{CreatedAt: tt.createdAt}
			assert.Equal(t, tt.expected, layer.CreatedString(now))
		})
	}
}

func TestLayer_Clone(t *testing.T) {
	layer := Layer{
		ID:    "l1",
		Name:  "Basics",
		Words: []Word{{ID: "w1", Original: "hello", Translation: "salom"}},
	}

	clone := layer.Clone()
	clone.Words[0].Translation = "changed"
	clone.Words = append(clone.Words, Word{ID: "w2"})

	assert.Equal(t, "salom", layer.Words[0].Translation)
	assert.Len(t, layer.Words, 1)
}

func TestLayer_WordIndex(t *testing.T) {
	layer := Layer{Words: []Word{{ID: "a"}, {ID: "b"}}}

	assert.Equal(t, 1, layer.WordIndex("b"))
	assert.Equal(t, -1, layer.WordIndex("missing"))
}
