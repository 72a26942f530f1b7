package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

// Bot is the part of *tgbotapi.BotAPI the handler talks to.
type Bot interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// BookService hands out per-chat reader sessions.
// Open and SetLanguage always return a usable session, bound to an empty
// store when the book could not be loaded.
type BookService interface {
	Open(ctx context.Context, chatID int64, clientLang string) (*book.Session, error)
	SetLanguage(ctx context.Context, chatID int64, lang entities.Language) (*book.Session, error)
	Reload(ctx context.Context, lang entities.Language) error
}
