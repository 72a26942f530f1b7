// Package tui is the terminal front end of the reader.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/locale"
)

// LocalChatID is the settings key of the terminal reader.
const LocalChatID int64 = 0

// ─── port ────────────────────────────────────────────────────────────────────

// Books is the minimal interface this view needs from the book service.
// It only hands out stores; the session is owned by the model.
type Books interface {
	Load(ctx context.Context, chatID int64, clientLang string) (*book.Store, error)
	SwitchLanguage(ctx context.Context, chatID int64, lang entities.Language) (*book.Store, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// openedMsg is sent when the book has been loaded (or failed to load).
// A nil store leaves the session as it is.
type openedMsg struct {
	store    *book.Store
	err      error
	changed  bool
	reloaded bool
}

// ReloadedMsg tells the reader its book was re-read from disk.
type ReloadedMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Bubble Tea model of the reader. It owns one session.
type Model struct {
	ctx        context.Context
	books       Books
	clientLang  string
	sessionOpts []book.Option

	session *book.Session
	listing bool
	status  string
	failed  bool

	keys     KeyMap
	help     help.Model
	list     list.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer
	width    int
	height   int
}

// New creates a reader backed by books. clientLang is the OS locale, used
// until a language is stored. opts configure the reader's session.
func New(ctx context.Context, books Books, clientLang string, opts ...book.Option) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(ColorPeach).BorderForeground(ColorPeach)

	l := list.New(nil, delegate, 0, 0)
	l.Styles.Title = TitleStyle
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	return Model{
		ctx:         ctx,
		books:       books,
		clientLang:  clientLang,
		sessionOpts: opts,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		list:        l,
		viewport:    viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return m.openCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case openedMsg:
		m.bind(msg.store)
		m.failed = msg.err != nil
		m.status = ""
		if m.session != nil {
			s := m.texts()
			switch {
			case m.failed:
				m.status = s.Notice(book.NoticeErrorLoading, 0)
			case msg.changed:
				m.status = s.LanguageChanged
			case msg.reloaded:
				m.status = s.Reloaded
			}
		}
		m.refresh()
		return m, nil

	case ReloadedMsg:
		return m, m.reopenCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	if m.session == nil {
		return m, nil
	}

	if key.Matches(msg, m.keys.Language) {
		return m, m.setLanguageCmd(m.session.Store().Language().Next())
	}

	// Nothing to navigate; keep the load error on screen.
	if m.session.Len() == 0 {
		return m, nil
	}

	if m.showingList() {
		return m.handleListKey(msg)
	}

	s := m.texts()
	switch {
	case key.Matches(msg, m.keys.Previous):
		m.status = ""
		if m.session.Previous() {
			m.refresh()
		}
	case key.Matches(msg, m.keys.Next):
		m.status = ""
		if m.session.Next() {
			m.refresh()
		}
	case key.Matches(msg, m.keys.Random):
		if notice, ok := m.session.ShowRandom(); ok {
			m.status = s.Notice(notice, 0)
			m.refresh()
		}
	case key.Matches(msg, m.keys.Favorite):
		q, _ := m.session.Current()
		if notice, ok := m.session.ToggleFavorite(); ok {
			m.status = s.Notice(notice, q.Number)
			m.refresh()
		}
	case key.Matches(msg, m.keys.Tab):
		m.status = s.Notice(m.session.ShowFavorites(), 0)
		m.refresh()
	case key.Matches(msg, m.keys.List):
		m.status = ""
		m.listing = true
		m.refresh()
	default:
		return m.forward(msg)
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(questionItem)
		if !ok {
			return m, nil
		}
		if m.listing {
			m.session.ShowQuestion(item.index)
			m.session.SetTab(book.TabAll)
		} else {
			m.session.SelectByFavorite(item.q.Number)
		}
		m.listing = false
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.listing = false
		m.status = ""
		if m.session.Tab() == book.TabFavorites {
			m.session.SetTab(book.TabAll)
		} else {
			m.status = m.texts().Notice(m.session.ShowFavorites(), 0)
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.list.FilterState() == list.FilterApplied {
			return m.forward(msg)
		}
		m.listing = false
		m.session.SetTab(book.TabAll)
		m.refresh()
		return m, nil
	}

	return m.forward(msg)
}

// forward passes msg to the component on screen.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.showingList() {
		m.list, cmd = m.list.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	if m.session == nil {
		return TitleStyle.Render("📖 ...")
	}

	var body string
	switch {
	case m.session.Len() == 0:
		body = EmptyStyle.Render(m.texts().Title)
	case m.showingList() && len(m.list.Items()) == 0:
		body = EmptyStyle.Render(m.texts().Notice(book.NoticeNoFavorites, 0))
	case m.showingList():
		body = m.list.View()
	default:
		body = ContentStyle.Render(m.viewport.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderStatus(),
		m.help.View(m.keys),
	)
}

// Session returns the reader's session, nil until the book was opened.
func (m Model) Session() *book.Session {
	return m.session
}

// Status returns the notice currently shown in the status line.
func (m Model) Status() string {
	return m.status
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) openCmd() tea.Cmd {
	return func() tea.Msg {
		store, err := m.books.Load(m.ctx, LocalChatID, m.clientLang)
		return openedMsg{store: store, err: err}
	}
}

// reopenCmd loads the freshly read book; Update rebinds the session to it.
func (m Model) reopenCmd() tea.Cmd {
	return func() tea.Msg {
		store, err := m.books.Load(m.ctx, LocalChatID, m.clientLang)
		return openedMsg{store: store, err: err, reloaded: err == nil}
	}
}

func (m Model) setLanguageCmd(lang entities.Language) tea.Cmd {
	return func() tea.Msg {
		// A nil store means the setting was not saved; keep the old book.
		store, err := m.books.SwitchLanguage(m.ctx, LocalChatID, lang)
		if store == nil {
			return openedMsg{}
		}
		return openedMsg{store: store, err: err, changed: err == nil}
	}
}

// bind points the session at store. Commands run on their own goroutines,
// so this is the only place the session's book changes.
func (m *Model) bind(store *book.Store) {
	switch {
	case store == nil:
	case m.session == nil:
		m.session = book.NewSession(store, m.sessionOpts...)
	default:
		m.session.Rebind(store)
	}
}

func (m Model) texts() locale.Strings {
	if m.session == nil {
		return locale.T(entities.DefaultLanguage)
	}
	return locale.T(m.session.Store().Language())
}

func (m Model) showingList() bool {
	if m.session == nil {
		return false
	}
	return m.listing || m.session.Tab() == book.TabFavorites
}

func (m *Model) resize() {
	bodyH := m.height - lipgloss.Height(m.renderHeader()) - 1 - lipgloss.Height(m.help.View(m.keys))
	if bodyH < 3 {
		bodyH = 3
	}

	m.list.SetSize(m.width, bodyH)

	// content border takes two rows and two columns
	m.viewport.Width = max(m.width-2, 1)
	m.viewport.Height = bodyH - 2
	m.renderer = newRenderer(max(m.width-4, 20))
}

// refresh rebuilds whatever is on screen from the session.
func (m *Model) refresh() {
	if m.session == nil {
		return
	}
	s := m.texts()

	switch {
	case m.listing:
		m.list.Title = s.Select
		m.list.ResetFilter()
		m.list.SetItems(allItems(m.session))
		m.list.Select(m.session.Index())
	case m.session.Tab() == book.TabFavorites:
		m.list.Title = s.FavoritesTitle
		m.list.ResetFilter()
		m.list.SetItems(favoriteItems(m.session))
	default:
		m.viewport.SetContent(renderMarkdown(m.renderer, questionMarkdown(m.session, s)))
		m.viewport.GotoTop()
	}
}

func (m Model) renderHeader() string {
	if m.session == nil {
		return TitleStyle.Render("📖")
	}
	s := m.texts()

	all, favorites := TabStyle, TabStyle
	if m.session.Tab() == book.TabFavorites {
		favorites = ActiveTabStyle
	} else {
		all = ActiveTabStyle
	}

	parts := []string{
		TitleStyle.Render("📖 " + s.Title),
		all.Render(s.All),
		favorites.Render(fmt.Sprintf("%s (%d)", s.Favorites, m.session.FavoriteCount())),
	}
	if m.session.Len() > 0 {
		parts = append(parts, MutedStyle.Render(fmt.Sprintf("%d / %d", m.session.Index()+1, m.session.Len())))
	}
	parts = append(parts, MutedStyle.Render(locale.Name(m.session.Store().Language())))

	return strings.Join(parts, "  ") + "\n"
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.failed {
		return ErrorStyle.Render(m.status)
	}
	return StatusStyle.Render(m.status)
}
