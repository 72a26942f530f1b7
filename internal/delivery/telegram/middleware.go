package telegram

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/locale"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(lang entities.Language, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, locale.T(lang).InternalError)
			return nil
		}
		return nil
	}
}
