// Package locale holds the UI string tables of every supported language.
package locale

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

// Strings is the UI string table of one language.
type Strings struct {
	Title          string
	Question       string
	Previous       string
	Next           string
	Favorite       string
	Unfavorite     string
	Random         string
	All            string
	Favorites      string
	FavoritesTitle string
	Select         string
	Language       string

	AddedToFavorites     string
	RemovedFromFavorites string
	RandomShown          string
	ErrorLoading         string
	NoFavorites          string

	Help            string
	ChooseLanguage  string
	LanguageChanged string
	Reloaded        string
	UnknownCommand  string
	NotFound        string
	InternalError   string
}

// Notice renders a session notice. number is the affected question, if any.
func (s Strings) Notice(n book.Notice, number int) string {
	switch n {
	case book.NoticeAddedToFavorites:
		return fmt.Sprintf("%s: #%d", s.AddedToFavorites, number)
	case book.NoticeRemovedFromFavorites:
		return fmt.Sprintf("%s: #%d", s.RemovedFromFavorites, number)
	case book.NoticeRandomShown:
		return s.RandomShown
	case book.NoticeErrorLoading:
		return s.ErrorLoading
	case book.NoticeNoFavorites:
		return s.NoFavorites
	default:
		return ""
	}
}

// T returns the string table for lang, falling back to English.
func T(lang entities.Language) Strings {
	if s, ok := tables[lang]; ok {
		return s
	}
	return tables[entities.DefaultLanguage]
}

// Name returns the language's own name for menus.
func Name(lang entities.Language) string {
	switch lang {
	case entities.LanguagePortuguese:
		return "🇧🇷 Português"
	case entities.LanguageSpanish:
		return "🇪🇸 Español"
	case entities.LanguageFrench:
		return "🇫🇷 Français"
	default:
		return "🇬🇧 English"
	}
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first tag is the fallback
	language.BrazilianPortuguese,
	language.Spanish,
	language.French,
})

// Match negotiates a client locale (e.g. Telegram's "pt", "fr-CA", "es-419")
// against the supported languages. Unknown input yields the default language.
func Match(code string) entities.Language {
	if code == "" {
		return entities.DefaultLanguage
	}
	tag, err := language.Parse(code)
	if err != nil {
		return entities.DefaultLanguage
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return entities.DefaultLanguage
	}

	switch idx {
	case 1:
		return entities.LanguagePortuguese
	case 2:
		return entities.LanguageSpanish
	case 3:
		return entities.LanguageFrench
	default:
		return entities.LanguageEnglish
	}
}
