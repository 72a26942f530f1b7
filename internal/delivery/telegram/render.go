package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/locale"
)

type viewKind int

const (
	// viewBook shows the session's tab: the current question or the favorites.
	viewBook viewKind = iota
	// viewList is the paginated direct selection list.
	viewList
	viewLanguages
)

// view is what a message currently shows. Only the tab lives in the session;
// pages and menus travel in the callback data.
type view struct {
	kind viewKind
	page int
}

type screen struct {
	text     string
	keyboard *tgbotapi.InlineKeyboardMarkup
}

// render draws the session. notice, when set, is shown above the content.
func render(session *book.Session, v view, pageSize int, notice string) screen {
	s := locale.T(session.Store().Language())
	if pageSize <= 0 {
		pageSize = 10
	}

	var scr screen
	switch {
	case v.kind == viewLanguages:
		scr = renderLanguages(s, session.Store().Language())
	case session.Len() == 0:
		kb := tgbotapi.NewInlineKeyboardMarkup(buildLanguageRow(s))
		scr = screen{text: bold("📖 " + s.Title), keyboard: &kb}
	case v.kind == viewList:
		scr = renderList(s, session, v.page, pageSize)
	case session.Tab() == book.TabFavorites:
		scr = renderFavorites(s, session, v.page, pageSize)
	default:
		scr = renderQuestion(s, session, pageSize)
	}

	if notice != "" {
		scr.text = italic(notice) + "\n\n" + scr.text
	}
	return scr
}

func renderQuestion(s locale.Strings, session *book.Session, pageSize int) screen {
	q, _ := session.Current()
	question, answer := fitBody(q.Question, q.Answer)

	var sb strings.Builder
	sb.WriteString(bold("📖 " + s.Title))
	sb.WriteString("\n\n")
	sb.WriteString(bold(fmt.Sprintf("%s %d", s.Question, q.Number)))
	if session.IsFavorite(q.Number) {
		sb.WriteString(" ⭐")
	}
	sb.WriteString("\n")
	sb.WriteString(esc(question))
	sb.WriteString("\n\n")
	sb.WriteString(blockquote(answer))
	sb.WriteString("\n\n")
	sb.WriteString(italic(fmt.Sprintf("%d / %d", session.Index()+1, session.Len())))

	kb := buildQuestionKeyboard(s, session, pageSize)
	return screen{text: sb.String(), keyboard: &kb}
}

func renderFavorites(s locale.Strings, session *book.Session, page, pageSize int) screen {
	var favorites []entities.Question
	for q := range session.ListFavorites() {
		favorites = append(favorites, q)
	}

	text := bold(s.FavoritesTitle)
	if len(favorites) == 0 {
		text += "\n\n" + esc(s.Notice(book.NoticeNoFavorites, 0))
	}

	totalPages := pages(len(favorites), pageSize)
	page = clampPage(page, totalPages)

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, q := range pageOf(favorites, page, pageSize) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(q.Preview(entities.PreviewLength), buildSelectCallback(q.Number)),
		))
	}
	if row := buildPagerRow(page, totalPages, func(p int) string { return buildTabCallback(tabFavorites, p) }); row != nil {
		rows = append(rows, row)
	}
	rows = append(rows, buildBackRow(s))

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return screen{text: text, keyboard: &kb}
}

func renderList(s locale.Strings, session *book.Session, page, pageSize int) screen {
	totalPages := pages(session.Len(), pageSize)
	page = clampPage(page, totalPages)

	var rows [][]tgbotapi.InlineKeyboardButton
	start := page * pageSize
	for i := start; i < start+pageSize && i < session.Len(); i++ {
		q, _ := session.Store().At(i)
		label := q.Preview(entities.PreviewLength)
		if i == session.Index() {
			label = "▶️ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildGoCallback(i)),
		))
	}
	if row := buildPagerRow(page, totalPages, buildListCallback); row != nil {
		rows = append(rows, row)
	}
	rows = append(rows, buildBackRow(s))

	text := bold("📖 "+s.Title) + "\n\n" + esc(s.Select)

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return screen{text: text, keyboard: &kb}
}

func renderLanguages(s locale.Strings, current entities.Language) screen {
	kb := buildLanguageKeyboard(s, current)
	return screen{text: esc(s.ChooseLanguage), keyboard: &kb}
}

func pages(n, pageSize int) int {
	return (n + pageSize - 1) / pageSize
}

func clampPage(page, totalPages int) int {
	if page >= totalPages {
		page = totalPages - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}

func pageOf(qs []entities.Question, page, pageSize int) []entities.Question {
	start := page * pageSize
	if start >= len(qs) {
		return nil
	}
	end := min(start+pageSize, len(qs))
	return qs[start:end]
}
