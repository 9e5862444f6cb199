package handler

import (
	"vocablayers/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStartGame starts a practice session over the layer
func (h *Handler) handleStartGame(c tele.Context, layerID string) error {
	layer, ok := h.store.GetLayerByID(layerID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Layer not found", ShowAlert: true})
	}
	if len(layer.Words) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Add some words first", ShowAlert: true})
	}

	h.ResetState(c.Sender().ID)
	session := h.store.StartGameSession(layer.ID)

	h.logger.Info("Game started",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("layer_id", layer.ID),
		zap.Int("words", len(layer.Words)),
	)

	return h.render(c, questionText(layer, session, ""), gameMarkup())
}

// handleAnswer scores the current word and moves on
func (h *Handler) handleAnswer(c tele.Context, correct bool) error {
	h.gameMux.Lock()
	defer h.gameMux.Unlock()

	session := h.store.Session()
	if session == nil {
		return c.Respond(&tele.CallbackResponse{Text: "No game in progress"})
	}

	layer, ok := h.store.GetLayerByID(session.LayerID)
	if !ok || session.CurrentGameIndex >= len(layer.Words) {
		return h.finishGame(c, *session, "")
	}

	answered := layer.Words[session.CurrentGameIndex]
	h.store.UpdateSessionScore(correct)
	session = h.store.NextGame()
	if session == nil {
		// Layer was deleted meanwhile
		return c.Respond(&tele.CallbackResponse{Text: "No game in progress"})
	}
	reveal := answerText(answered, correct)

	if session.CurrentGameIndex >= len(layer.Words) {
		return h.finishGame(c, *session, reveal)
	}

	return h.render(c, questionText(layer, *session, reveal), gameMarkup())
}

// handleEndGame stops the session early
func (h *Handler) handleEndGame(c tele.Context) error {
	h.gameMux.Lock()
	defer h.gameMux.Unlock()

	session := h.store.Session()
	if session == nil {
		return c.Respond(&tele.CallbackResponse{Text: "No game in progress"})
	}
	return h.finishGame(c, *session, "")
}

func (h *Handler) finishGame(c tele.Context, session domain.GameSession, reveal string) error {
	h.store.EndSession()

	h.logger.Info("Game finished",
		zap.Int64("user_id", c.Sender().ID),
		zap.String("layer_id", session.LayerID),
		zap.Int("score", session.Score),
		zap.Int("total", session.TotalQuestions),
	)

	text := resultText(session)
	if reveal != "" {
		text = reveal + "\n\n" + text
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("🔁 Play again", prefixPlay+session.LayerID)),
		markup.Row(btnLayers, btnBack),
	)
	return h.render(c, text, markup)
}

// gameMarkup returns the answer keyboard
func gameMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("✅ I knew it", dataAnswerYes),
			markup.Data("❌ I didn't", dataAnswerNo),
		),
		markup.Row(btnEndGame),
	)
	return markup
}
