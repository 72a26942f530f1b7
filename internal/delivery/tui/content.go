package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/glamour"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/locale"
)

// questionMarkdown renders the current question as markdown.
func questionMarkdown(session *book.Session, s locale.Strings) string {
	q, ok := session.Current()
	if !ok {
		return ""
	}
	return markdown(q, s, session.IsFavorite(q.Number))
}

// markdown lays a question out as a heading, the question text and the
// answer as a quote.
func markdown(q entities.Question, s locale.Strings, favorite bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s %d", s.Question, q.Number)
	if favorite {
		sb.WriteString(" ⭐")
	}
	sb.WriteString("\n\n")
	sb.WriteString(q.Question)
	sb.WriteString("\n\n")
	for _, line := range strings.Split(q.Answer, "\n") {
		sb.WriteString("> ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderQuestion renders one question for non-interactive output.
func RenderQuestion(q entities.Question, lang entities.Language, width int) string {
	return renderMarkdown(newRenderer(width), markdown(q, locale.T(lang), false))
}

func newRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r
}

// renderMarkdown falls back to the raw markdown when glamour is unavailable.
func renderMarkdown(r *glamour.TermRenderer, md string) string {
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// ─── list items ──────────────────────────────────────────────────────────────

type questionItem struct {
	q     entities.Question
	index int
}

func (i questionItem) Title() string       { return i.q.Preview(entities.PreviewLength) }
func (i questionItem) Description() string { return "" }
func (i questionItem) FilterValue() string { return fmt.Sprintf("%d %s", i.q.Number, i.q.Question) }

func allItems(session *book.Session) []list.Item {
	items := make([]list.Item, 0, session.Len())
	for i, q := range session.Store().All() {
		items = append(items, questionItem{q: q, index: i})
	}
	return items
}

func favoriteItems(session *book.Session) []list.Item {
	var items []list.Item
	for q := range session.ListFavorites() {
		idx, _ := session.Store().IndexOf(q.Number)
		items = append(items, questionItem{q: q, index: idx})
	}
	return items
}
