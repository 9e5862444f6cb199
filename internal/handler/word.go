package handler

import (
	"fmt"
	"strings"

	"vocablayers/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(errorText)
	}

	// If not authorized, check password
	if !authorized {
		if !h.authService.CheckPassword(text) {
			return c.Send("Wrong password")
		}

		if err := h.authService.AuthorizeUser(userID); err != nil {
			h.logger.Error("Failed to authorize user", zap.Error(err))
			return c.Send(errorText)
		}

		h.logger.Info("User authorized", zap.Int64("user_id", userID))
		h.ResetState(userID)
		return c.Send("✅ Access granted!\n\n"+mainMenuText, mainMenuMarkup())
	}

	if text == "" {
		return nil
	}

	// User is authorized, handle based on state
	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingLayerName:
		return h.createLayer(c, text)

	case domain.StateWaitingWord:
		return h.offerSuggestions(c, state.LayerID, text)

	case domain.StateWaitingTranslation:
		return h.saveWord(c, state, text)

	default:
		return c.Send(mainMenuText, mainMenuMarkup())
	}
}

// handleAddWord starts the word input flow for a layer
func (h *Handler) handleAddWord(c tele.Context, layerID string) error {
	layer, ok := h.store.GetLayerByID(layerID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Layer not found", ShowAlert: true})
	}

	h.SetState(c.Sender().ID, &domain.StateData{
		State:   domain.StateWaitingWord,
		LayerID: layer.ID,
	})

	return h.render(c, fmt.Sprintf("✏️ Send a word for \"%s\"", layer.Name), cancelMarkup())
}

// offerSuggestions shows translation suggestions for the word just sent
func (h *Handler) offerSuggestions(c tele.Context, layerID, word string) error {
	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Debug("Failed to send typing action", zap.Error(err))
	}

	suggestions := h.suggestions.Suggest(word)

	h.SetState(c.Sender().ID, &domain.StateData{
		State:       domain.StateWaitingTranslation,
		LayerID:     layerID,
		CurrentWord: word,
		Suggestions: suggestions,
	})

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for i, s := range suggestions {
		btn := markup.Data(suggestionButtonText(s), fmt.Sprintf("%s%d", prefixPick, i))
		rows = append(rows, markup.Row(btn))
	}
	rows = append(rows, markup.Row(btnCancel))
	markup.Inline(rows...)

	return c.Send(suggestionsText(word, suggestions), markup)
}

// handlePickSuggestion saves the word with the chosen suggestion
func (h *Handler) handlePickSuggestion(c tele.Context, index int) error {
	state := h.GetState(c.Sender().ID)
	if state.State != domain.StateWaitingTranslation || index < 0 || index >= len(state.Suggestions) {
		return c.Respond(&tele.CallbackResponse{Text: "This suggestion is no longer available"})
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.saveWord(c, state, state.Suggestions[index].Translation)
}

// saveWord adds the pending word to its layer and waits for the next one
func (h *Handler) saveWord(c tele.Context, state *domain.StateData, translation string) error {
	userID := c.Sender().ID

	word, ok := h.store.AddWord(state.LayerID, state.CurrentWord, translation)
	if !ok {
		h.ResetState(userID)
		return c.Send("This layer no longer exists.", mainMenuMarkup())
	}

	h.logger.Info("Word saved",
		zap.Int64("user_id", userID),
		zap.String("layer_id", state.LayerID),
		zap.String("word_id", word.ID),
	)

	// Wait for the next word in the same layer
	h.SetState(userID, &domain.StateData{
		State:   domain.StateWaitingWord,
		LayerID: state.LayerID,
	})

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("✅ Done", prefixLayer+state.LayerID)))

	return c.Send(
		fmt.Sprintf("✅ Saved: %s — %s\n\nSend the next word or tap Done.", word.Original, word.Translation),
		markup,
	)
}
