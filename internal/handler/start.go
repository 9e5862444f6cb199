package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	mainMenuText       = "🏠 Main menu\n\nChoose an action:"
	passwordPromptText = "Hi! This is a personal vocabulary bot. Send the password to continue:"
	errorText          = "Something went wrong. Please try again later."
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(errorText)
	}

	h.ResetState(userID)

	if !authorized {
		// Request password
		return c.Send(passwordPromptText)
	}

	// Show main menu
	return h.render(c, mainMenuText, mainMenuMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	h.ResetState(c.Sender().ID)
	return h.render(c, mainMenuText, mainMenuMarkup())
}
