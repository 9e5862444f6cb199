package service

import (
	"testing"

	"vocablayers/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Summary(t *testing.T) {
	tests := []struct {
		name            string
		layers          map[string][]string
		startSession    bool
		expectedLayers  int
		expectedWords   int
		expectedLargest string
	}{
		{
			name:           "empty collection",
			expectedLayers: 0,
			expectedWords:  0,
		},
		{
			name: "several layers",
			layers: map[string][]string{
				"Greetings": {"hello", "goodbye"},
				"Home":      {"house", "water", "book"},
				"Empty":     nil,
			},
			startSession:    true,
			expectedLayers:  3,
			expectedWords:   5,
			expectedLargest: "Home",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			var lastID string
			for name, words := range tt.layers {
				layer := store.AddLayer(name)
				lastID = layer.ID
				for _, w := range words {
					store.AddWord(layer.ID, w, "")
				}
			}
			if tt.startSession {
				store.StartGameSession(lastID)
			}

			service := NewStatsService(store, testutil.NewTestLogger())
			stats := service.Summary()

			assert.Equal(t, tt.expectedLayers, stats.Layers)
			assert.Equal(t, tt.expectedWords, stats.Words)
			assert.Equal(t, tt.expectedLargest, stats.LargestLayer)
			if tt.startSession {
				require.NotNil(t, stats.ActiveSession)
				assert.Equal(t, lastID, stats.ActiveSession.LayerID)
			} else {
				assert.Nil(t, stats.ActiveSession)
			}
		})
	}
}
