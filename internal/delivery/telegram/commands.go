package telegram

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/locale"
)

// startHandler greets the reader and shows the current question.
func (h *Handler) startHandler(session *book.Session) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.sendText(chatID, welcomeText(locale.T(session.Store().Language())))

		session.SetTab(book.TabAll)
		return h.sendScreen(chatID, render(session, view{kind: viewBook}, h.pageSize, ""))
	}
}

func (h *Handler) bookHandler(session *book.Session) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session.SetTab(book.TabAll)
		return h.sendScreen(chatID, render(session, view{kind: viewBook}, h.pageSize, ""))
	}
}

func (h *Handler) randomHandler(session *book.Session) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		notice, _ := session.ShowRandom()
		session.SetTab(book.TabAll)

		text := locale.T(session.Store().Language()).Notice(notice, 0)
		return h.sendScreen(chatID, render(session, view{kind: viewBook}, h.pageSize, text))
	}
}

func (h *Handler) favoritesHandler(session *book.Session) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session.ShowFavorites()
		return h.sendScreen(chatID, render(session, view{kind: viewBook}, h.pageSize, ""))
	}
}

func (h *Handler) languageHandler(session *book.Session) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendScreen(chatID, render(session, view{kind: viewLanguages}, h.pageSize, ""))
	}
}

// reloadHandler re-reads the book of the chat language from disk.
func (h *Handler) reloadHandler(session *book.Session, clientLang string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		lang := session.Store().Language()
		s := locale.T(lang)

		if err := h.books.Reload(ctx, lang); err != nil {
			h.logger.Error("failed to reload book",
				zap.Int64("chat_id", chatID),
				zap.String("lang", string(lang)),
				zap.Error(err),
			)
			h.sendLoadError(chatID, lang)
			return nil
		}

		session, loaded := h.openSession(ctx, chatID, clientLang)
		if !loaded {
			h.sendLoadError(chatID, session.Store().Language())
			return nil
		}

		return h.sendScreen(chatID, render(session, view{kind: viewBook}, h.pageSize, s.Reloaded))
	}
}

// numberHandler jumps to the question with the given number.
func (h *Handler) numberHandler(session *book.Session, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		s := locale.T(session.Store().Language())

		n, err := strconv.Atoi(text)
		if err != nil {
			h.sendError(chatID, s.UnknownCommand)
			return nil
		}

		idx, ok := session.Store().IndexOf(n)
		if !ok {
			h.sendError(chatID, fmt.Sprintf("%s (#%d)", s.NotFound, n))
			return nil
		}

		session.ShowQuestion(idx)
		session.SetTab(book.TabAll)
		return h.sendScreen(chatID, render(session, view{kind: viewBook}, h.pageSize, ""))
	}
}
