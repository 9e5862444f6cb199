package handler

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Prefixes of dynamic callback data
const (
	prefixLayer       = "layer_"
	prefixAddWord     = "addword_"
	prefixPlay        = "play_"
	prefixDeleteLayer = "dellayer_"
	prefixPick        = "pick_"

	dataAnswerYes = "answer_yes"
	dataAnswerNo  = "answer_no"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback: acknowledge, don't send a new message
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique did not come through
	switch data {
	case btnLayers.Unique:
		return h.handleLayers(c)
	case btnNewLayer.Unique:
		return h.handleNewLayer(c)
	case btnStats.Unique:
		return h.handleStats(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnBack.Unique:
		return h.handleStart(c)
	case btnEndGame.Unique:
		return h.handleEndGame(c)
	case dataAnswerYes:
		return h.handleAnswer(c, true)
	case dataAnswerNo:
		return h.handleAnswer(c, false)
	}

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, prefixLayer):
		return h.handleLayerView(c, strings.TrimPrefix(data, prefixLayer))
	case strings.HasPrefix(data, prefixAddWord):
		return h.handleAddWord(c, strings.TrimPrefix(data, prefixAddWord))
	case strings.HasPrefix(data, prefixPlay):
		return h.handleStartGame(c, strings.TrimPrefix(data, prefixPlay))
	case strings.HasPrefix(data, prefixDeleteLayer):
		return h.handleDeleteLayer(c, strings.TrimPrefix(data, prefixDeleteLayer))
	case strings.HasPrefix(data, prefixPick):
		index, err := strconv.Atoi(strings.TrimPrefix(data, prefixPick))
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Unknown option"})
		}
		return h.handlePickSuggestion(c, index)
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleStats shows collection statistics
func (h *Handler) handleStats(c tele.Context) error {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBack))

	return h.render(c, statsText(h.statsService.Summary()), markup)
}
