package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/locale"
)

// buildQuestionKeyboard builds the keyboard under the current question.
func buildQuestionKeyboard(s locale.Strings, session *book.Session, pageSize int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	var nav []tgbotapi.InlineKeyboardButton
	if session.Index() > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(s.Previous, buildNavCallback(navPrev)))
	}
	if session.Index() < session.Len()-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(s.Next, buildNavCallback(navNext)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	favLabel := s.Favorite
	if q, ok := session.Current(); ok && session.IsFavorite(q.Number) {
		favLabel = s.Unfavorite
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(favLabel, buildFavoriteCallback()),
			tgbotapi.NewInlineKeyboardButtonData(s.Random, buildRandomCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(s.Select, buildListCallback(session.Index()/pageSize)),
			tgbotapi.NewInlineKeyboardButtonData(s.Favorites, buildTabCallback(tabFavorites, 0)),
		),
		buildLanguageRow(s),
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildPagerRow builds ◀️ page/total ▶️ controls. pageData encodes a page callback.
func buildPagerRow(page, totalPages int, pageData func(page int) string) []tgbotapi.InlineKeyboardButton {
	if totalPages <= 1 {
		return nil
	}

	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️", pageData(page-1)))
	}

	row = append(row, tgbotapi.NewInlineKeyboardButtonData(
		fmt.Sprintf("%d / %d", page+1, totalPages), buildNoopCallback(),
	))

	if page < totalPages-1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("▶️", pageData(page+1)))
	}

	return row
}

// buildLanguageRow opens the language menu.
func buildLanguageRow(s locale.Strings) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(s.Language, buildLanguageMenuCallback()),
	)
}

// buildBackRow returns to the question view.
func buildBackRow(s locale.Strings) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(s.All, buildTabCallback(tabAll, 0)),
	)
}

// buildLanguageKeyboard lists every supported language, marking the current one.
func buildLanguageKeyboard(s locale.Strings, current entities.Language) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, lang := range entities.Languages {
		label := locale.Name(lang)
		if lang == current {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildLanguageCallback(lang)),
		))
	}
	rows = append(rows, buildBackRow(s))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
