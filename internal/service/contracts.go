package service

import (
	"context"
	"time"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

type SettingsRepository interface {
	Create(ctx context.Context, chatID int64, lang entities.Language) error
	GetByChatID(ctx context.Context, chatID int64) (*entities.Settings, error)
	UpdateLanguage(ctx context.Context, chatID int64, lang entities.Language) error
}

// QuestionRepository loads and caches the book of every language.
type QuestionRepository interface {
	Get(ctx context.Context, lang entities.Language) (*book.Store, error)
	Load(ctx context.Context, lang entities.Language) (*book.Store, error)
}

// SessionStorage keeps reader sessions by chat.
type SessionStorage interface {
	Get(chatID int64) (*book.Session, bool)
	Store(chatID int64, session *book.Session)
	Delete(chatID int64)
	EvictIdle(ttl time.Duration) int
}
