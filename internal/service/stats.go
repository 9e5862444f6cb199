package service

import (
	"vocablayers/internal/domain"

	"go.uber.org/zap"
)

// StatsService summarizes the vocabulary collection
type StatsService struct {
	store  *VocabularyStore
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(store *VocabularyStore, logger *zap.Logger) *StatsService {
	return &StatsService{
		store:  store,
		logger: logger,
	}
}

// Summary counts layers and words and reports the active session
func (s *StatsService) Summary() domain.Stats {
	stats := domain.Stats{ActiveSession: s.store.Session()}

	for _, layer := range s.store.Layers() {
		stats.Layers++
		stats.Words += len(layer.Words)
		if len(layer.Words) > stats.LargestSize {
			stats.LargestLayer = layer.Name
			stats.LargestSize = len(layer.Words)
		}
	}

	s.logger.Debug("Stats computed",
		zap.Int("layers", stats.Layers),
		zap.Int("words", stats.Words),
	)
	return stats
}
