package handler

import (
	"sync"

	"vocablayers/internal/domain"
	"vocablayers/internal/middleware"
	"vocablayers/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	authService  *service.AuthService
	store        *service.VocabularyStore
	suggestions  *service.SuggestionEngine
	statsService *service.StatsService
	logger       *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Serializes answer handling so a double tap cannot score twice
	gameMux sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	store *service.VocabularyStore,
	suggestions *service.SuggestionEngine,
	statsService *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		authService:  authService,
		store:        store,
		suggestions:  suggestions,
		statsService: statsService,
		logger:       logger,
		states:       make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	auth := middleware.AuthMiddleware(h.authService, h.logger)

	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages (password entry happens here, so no auth middleware)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnLayers, h.handleLayers, auth)
	h.bot.Handle(&btnNewLayer, h.handleNewLayer, auth)
	h.bot.Handle(&btnStats, h.handleStats, auth)
	h.bot.Handle(&btnCancel, h.handleCancel, auth)
	h.bot.Handle(&btnBack, h.handleStart, auth)
	h.bot.Handle(&btnEndGame, h.handleEndGame, auth)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback, auth)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// render edits the message behind a callback, or sends a new one for commands and text
func (h *Handler) render(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil // Message was already modified, just acknowledged
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// Inline keyboard buttons
var (
	btnLayers = tele.Btn{
		Unique: "layers",
		Text:   "📚 My layers",
	}
	btnNewLayer = tele.Btn{
		Unique: "new_layer",
		Text:   "➕ New layer",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Stats",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Cancel",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Main menu",
	}
	btnEndGame = tele.Btn{
		Unique: "end_game",
		Text:   "🏁 Finish",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnLayers),
		menu.Row(btnNewLayer),
		menu.Row(btnStats),
	)
	return menu
}

// cancelMarkup returns a keyboard with a single cancel button
func cancelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCancel))
	return markup
}
