// messages.go contains HTML formatting helpers for Telegram messages.

package telegram

import (
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/spirits-book-bot/internal/locale"
)

const (
	// maxBodyRunes is shared by a question and its answer, keeping the
	// rendered message below Telegram's 4096 character limit.
	maxBodyRunes = 3500
	// maxQuestionRunes leaves the answer at least half of the budget.
	maxQuestionRunes = maxBodyRunes / 2
)

// esc escapes plain text for HTML parse mode.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func bold(s string) string {
	return "<b>" + esc(s) + "</b>"
}

func italic(s string) string {
	return "<i>" + esc(s) + "</i>"
}

func blockquote(s string) string {
	return "<blockquote>" + esc(s) + "</blockquote>"
}

// truncate cuts s to limit runes, marking the cut with an ellipsis.
// The result never exceeds limit runes.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:limit-1])) + "…"
}

// fitBody truncates question and answer so together they fit maxBodyRunes.
func fitBody(question, answer string) (string, string) {
	question = truncate(question, maxQuestionRunes)
	return question, truncate(answer, maxBodyRunes-utf8.RuneCountInString(question))
}

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newHTMLEdit creates an edit with HTML parse mode.
func newHTMLEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}

// welcomeText builds the /start greeting.
func welcomeText(s locale.Strings) string {
	var sb strings.Builder

	sb.WriteString(bold("📖 " + s.Title))
	sb.WriteString("\n\n")
	sb.WriteString(esc(s.Help))

	return sb.String()
}
