package middleware

import (
	"vocablayers/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware lets only authorized users through
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return reply(c, "Something went wrong. Please try again later.")
			}

			if !authorized {
				logger.Info("Unauthorized request rejected", zap.Int64("user_id", userID))
				return reply(c, "Send the password first")
			}

			return next(c)
		}
	}
}

// reply answers a callback with an alert, or a message with a new message
func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
