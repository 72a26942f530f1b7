package telegram

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/locale"
	"github.com/aliskhannn/spirits-book-bot/internal/service"
)

// errMessageNotModified is returned by Telegram when an edit changes nothing.
const errMessageNotModified = "message is not modified"

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	var toast string
	// Remove the user's "clock", with the notice when there is one.
	defer func() { h.answer(cb.ID, toast) }()

	if cb.Message == nil || cb.Message.Chat == nil {
		return
	}

	cd := decodeCallback(cb.Data)
	if cd.Action == actionNoop {
		return
	}

	chatID := cb.Message.Chat.ID
	clientLang := ""
	if cb.From != nil {
		clientLang = cb.From.LanguageCode
	}

	session, loaded := h.openSession(ctx, chatID, clientLang)
	// The language menu is the way out of a book that does not load.
	if !loaded && cd.Action != actionLanguage {
		toast = locale.T(session.Store().Language()).Notice(book.NoticeErrorLoading, 0)
		return
	}

	_ = h.withErrorHandling(session.Store().Language(), func(ctx context.Context, chatID int64) error {
		var (
			scr screen
			err error
		)
		scr, toast, err = h.applyCallback(ctx, chatID, session, cd)
		if err != nil {
			return err
		}
		if scr.text == "" {
			return nil
		}
		return h.edit(chatID, cb.Message.MessageID, scr)
	})(ctx, chatID)
}

// applyCallback performs the button action and returns the new screen and
// the notice to toast. An empty screen leaves the message alone.
func (h *Handler) applyCallback(
	ctx context.Context,
	chatID int64,
	session *book.Session,
	cd callbackData,
) (screen, string, error) {
	s := locale.T(session.Store().Language())
	v := view{kind: viewBook}

	switch cd.Action {
	case actionNav:
		var moved bool
		switch cd.param(0) {
		case navPrev:
			moved = session.Previous()
		case navNext:
			moved = session.Next()
		}
		if !moved {
			return screen{}, "", nil
		}

	case actionFavorite:
		q, ok := session.Current()
		notice, changed := session.ToggleFavorite()
		if !ok || !changed {
			return screen{}, "", nil
		}
		return render(session, v, h.pageSize, ""), s.Notice(notice, q.Number), nil

	case actionRandom:
		notice, ok := session.ShowRandom()
		if !ok {
			return screen{}, "", nil
		}
		session.SetTab(book.TabAll)
		return render(session, v, h.pageSize, ""), s.Notice(notice, 0), nil

	case actionTab:
		page, _ := cd.intParam(1)
		v.page = page
		if cd.param(0) != tabFavorites {
			session.SetTab(book.TabAll)
			break
		}
		notice := session.ShowFavorites()
		return render(session, v, h.pageSize, ""), s.Notice(notice, 0), nil

	case actionGo:
		idx, ok := cd.intParam(0)
		if !ok || !session.ShowQuestion(idx) {
			return screen{}, "", nil
		}
		session.SetTab(book.TabAll)

	case actionSelect:
		n, ok := cd.intParam(0)
		if !ok || !session.SelectByFavorite(n) {
			return screen{}, s.NotFound, nil
		}

	case actionList:
		page, _ := cd.intParam(0)
		v = view{kind: viewList, page: page}

	case actionLanguage:
		if len(cd.Params) == 0 {
			return render(session, view{kind: viewLanguages}, h.pageSize, ""), "", nil
		}

		lang, err := entities.ParseLanguage(cd.param(0))
		if err != nil {
			return screen{}, "", nil
		}

		session, err = h.books.SetLanguage(ctx, chatID, lang)
		if errors.Is(err, service.ErrBookUnavailable) {
			return render(session, view{kind: viewLanguages}, h.pageSize, ""), locale.T(lang).Notice(book.NoticeErrorLoading, 0), nil
		}
		if err != nil {
			return screen{}, "", err
		}
		session.SetTab(book.TabAll)
		return render(session, v, h.pageSize, ""), locale.T(lang).LanguageChanged, nil

	default:
		h.logger.Debug("unknown callback", zap.String("data", cd.Raw))
		return screen{}, "", nil
	}

	return render(session, v, h.pageSize, ""), "", nil
}

func (h *Handler) edit(chatID int64, msgID int, scr screen) error {
	edit := newHTMLEdit(chatID, msgID, scr.text)
	edit.ReplyMarkup = scr.keyboard

	if _, err := h.bot.Send(edit); err != nil {
		if strings.Contains(err.Error(), errMessageNotModified) {
			return nil
		}
		return err
	}
	return nil
}

func (h *Handler) answer(callbackID, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}
