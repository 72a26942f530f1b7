package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/locale"
)

// DefaultPageSize is the number of buttons per selection list page.
const DefaultPageSize = 10

type Handler struct {
	bot      Bot
	logger   *zap.Logger
	books    BookService
	pageSize int
}

func NewHandler(bot Bot, logger *zap.Logger, books BookService, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Handler{
		bot:      bot,
		logger:   logger,
		books:    books,
		pageSize: pageSize,
	}
}

// Run consumes updates one at a time until ctx is done, so a chat's session
// is only ever touched from this goroutine.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	clientLang := ""
	if update.Message.From != nil {
		clientLang = update.Message.From.LanguageCode
	}

	session, loaded := h.openSession(ctx, chatID, clientLang)
	lang := session.Store().Language()

	if !update.Message.IsCommand() {
		if !loaded {
			h.sendLoadError(chatID, lang)
			return
		}
		_ = h.withErrorHandling(lang, h.numberHandler(session, strings.TrimSpace(update.Message.Text)))(ctx, chatID)
		return
	}

	command := update.Message.Command()

	// Without a book only the commands that can bring one back still work.
	// /reload reports its own outcome.
	if !loaded && command != "reload" {
		h.sendLoadError(chatID, lang)
		if command != "language" && command != "help" {
			return
		}
	}

	switch command {
	case "start":
		_ = h.withErrorHandling(lang, h.startHandler(session))(ctx, chatID)

	case "book":
		_ = h.withErrorHandling(lang, h.bookHandler(session))(ctx, chatID)

	case "random":
		_ = h.withErrorHandling(lang, h.randomHandler(session))(ctx, chatID)

	case "favorites":
		_ = h.withErrorHandling(lang, h.favoritesHandler(session))(ctx, chatID)

	case "language":
		_ = h.withErrorHandling(lang, h.languageHandler(session))(ctx, chatID)

	case "reload":
		_ = h.withErrorHandling(lang, h.reloadHandler(session, clientLang))(ctx, chatID)

	case "help":
		h.sendText(chatID, esc(locale.T(lang).Help))

	default:
		h.sendText(chatID, esc(locale.T(lang).UnknownCommand))
	}
}

// openSession returns the chat's session and reports whether its book loaded.
// Without a book the session is bound to an empty store of the chat language.
func (h *Handler) openSession(ctx context.Context, chatID int64, clientLang string) (*book.Session, bool) {
	session, err := h.books.Open(ctx, chatID, clientLang)
	if err != nil {
		h.logger.Warn("book unavailable",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return session, false
	}
	return session, true
}

// sendLoadError tells the reader the book could not be loaded and offers
// the language menu as a way out.
func (h *Handler) sendLoadError(chatID int64, lang entities.Language) {
	s := locale.T(lang)
	kb := tgbotapi.NewInlineKeyboardMarkup(buildLanguageRow(s))

	msg := newHTMLMessage(chatID, esc(s.Notice(book.NoticeErrorLoading, 0)))
	msg.ReplyMarkup = kb
	h.send(msg)
}

func (h *Handler) sendScreen(chatID int64, scr screen) error {
	msg := newHTMLMessage(chatID, scr.text)
	if scr.keyboard != nil {
		msg.ReplyMarkup = scr.keyboard
	}
	_, err := h.bot.Send(msg)
	return err
}

func (h *Handler) sendText(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) sendError(chatID int64, err string) {
	h.sendText(chatID, esc(err))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
