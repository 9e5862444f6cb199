package service

import (
	"encoding/json"
	"sync"
	"time"

	"vocablayers/internal/domain"
	"vocablayers/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultStorageKey is the key holding the serialized layer collection
const DefaultStorageKey = "vocabulary-layers"

// VocabularyStore owns the layer collection and the active practice session.
// Every layer or word mutation is saved to the repository right after it
// succeeds; the session lives in memory only.
type VocabularyStore struct {
	repo   repository.KeyValueRepository
	logger *zap.Logger

	key   string
	newID func() string
	now   func() time.Time

	mu      sync.Mutex
	layers  []domain.Layer
	session *domain.GameSession
}

// StoreOption customizes a VocabularyStore
type StoreOption func(*VocabularyStore)

// WithIDGenerator replaces the random UUID generator
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *VocabularyStore) { s.newID = newID }
}

// WithClock replaces time.Now for layer creation timestamps
func WithClock(now func() time.Time) StoreOption {
	return func(s *VocabularyStore) { s.now = now }
}

// WithStorageKey overrides DefaultStorageKey
func WithStorageKey(key string) StoreOption {
	return func(s *VocabularyStore) { s.key = key }
}

// NewVocabularyStore creates a store and loads previously saved layers
func NewVocabularyStore(repo repository.KeyValueRepository, logger *zap.Logger, opts ...StoreOption) *VocabularyStore {
	s := &VocabularyStore{
		repo:   repo,
		logger: logger,
		key:    DefaultStorageKey,
		newID:  uuid.NewString,
		now:    time.Now,
		layers: []domain.Layer{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load()
	return s
}

// load reads the collection; a missing or malformed value leaves it empty
func (s *VocabularyStore) load() {
	stored, found, err := s.repo.Get(s.key)
	if err != nil {
		s.logger.Error("Failed to load layers, starting empty", zap.Error(err))
		return
	}
	if !found {
		return
	}

	var layers []domain.Layer
	if err := json.Unmarshal([]byte(stored), &layers); err != nil {
		s.logger.Warn("Stored layers are malformed, starting empty", zap.Error(err))
		return
	}

	for i := range layers {
		if layers[i].Words == nil {
			layers[i].Words = []domain.Word{}
		}
	}
	if layers != nil {
		s.layers = layers
	}

	s.logger.Info("Layers loaded", zap.Int("layers", len(s.layers)))
}

// save writes the full collection. Failures are logged, never returned.
// Caller must hold s.mu.
func (s *VocabularyStore) save() {
	data, err := json.Marshal(s.layers)
	if err != nil {
		s.logger.Error("Failed to encode layers", zap.Error(err))
		return
	}

	if err := s.repo.Set(s.key, string(data)); err != nil {
		s.logger.Error("Failed to save layers", zap.Error(err))
	}
}

func (s *VocabularyStore) layerIndex(id string) int {
	for i, l := range s.layers {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Layers returns a snapshot of all layers in creation order
func (s *VocabularyStore) Layers() []domain.Layer {
	s.mu.Lock()
	defer s.mu.Unlock()

	layers := make([]domain.Layer, len(s.layers))
	for i, l := range s.layers {
		layers[i] = l.Clone()
	}
	return layers
}

// GetLayerByID returns a snapshot of the layer with given id
func (s *VocabularyStore) GetLayerByID(id string) (domain.Layer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.layerIndex(id)
	if i == -1 {
		return domain.Layer{}, false
	}
	return s.layers[i].Clone(), true
}

// AddLayer appends a new empty layer
func (s *VocabularyStore) AddLayer(name string) domain.Layer {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer := domain.Layer{
		ID:        s.newID(),
		Name:      name,
		Words:     []domain.Word{},
		CreatedAt: s.now(),
	}
	s.layers = append(s.layers, layer)
	s.save()

	s.logger.Debug("Layer added", zap.String("layer_id", layer.ID), zap.String("name", name))
	return layer.Clone()
}

// DeleteLayer removes the layer and all of its words.
// An active session over that layer is ended as well.
func (s *VocabularyStore) DeleteLayer(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.layerIndex(id)
	if i == -1 {
		return false
	}

	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	s.save()

	if s.session != nil && s.session.LayerID == id {
		s.session = nil
		s.logger.Debug("Session ended with its layer", zap.String("layer_id", id))
	}
	return true
}

// AddWord appends a word to the layer
func (s *VocabularyStore) AddWord(layerID, original, translation string) (domain.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.layerIndex(layerID)
	if i == -1 {
		return domain.Word{}, false
	}

	word := domain.Word{
		ID:          s.newID(),
		Original:    original,
		Translation: translation,
	}
	s.layers[i].Words = append(s.layers[i].Words, word)
	s.save()

	return word, true
}

// DeleteWord removes a word from the layer
func (s *VocabularyStore) DeleteWord(layerID, wordID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.layerIndex(layerID)
	if i == -1 {
		return false
	}
	j := s.layers[i].WordIndex(wordID)
	if j == -1 {
		return false
	}

	words := s.layers[i].Words
	s.layers[i].Words = append(words[:j], words[j+1:]...)
	s.save()
	return true
}

// UpdateWord replaces original and translation of a word in place
func (s *VocabularyStore) UpdateWord(layerID, wordID, original, translation string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.layerIndex(layerID)
	if i == -1 {
		return false
	}
	j := s.layers[i].WordIndex(wordID)
	if j == -1 {
		return false
	}

	s.layers[i].Words[j].Original = original
	s.layers[i].Words[j].Translation = translation
	s.save()
	return true
}

// Session returns a copy of the active session, or nil
func (s *VocabularyStore) Session() *domain.GameSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessionSnapshot()
}

func (s *VocabularyStore) sessionSnapshot() *domain.GameSession {
	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

// StartGameSession replaces any session with a fresh one for layerID
func (s *VocabularyStore) StartGameSession(layerID string) domain.GameSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &domain.GameSession{LayerID: layerID}
	return *s.session
}

// UpdateSessionScore counts one answered question
func (s *VocabularyStore) UpdateSessionScore(correct bool) *domain.GameSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}

	s.session.TotalQuestions++
	if correct {
		s.session.Score++
	}
	return s.sessionSnapshot()
}

// NextGame advances the session to the next game
func (s *VocabularyStore) NextGame() *domain.GameSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}

	s.session.CurrentGameIndex++
	return s.sessionSnapshot()
}

// EndSession drops the active session
func (s *VocabularyStore) EndSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
}
