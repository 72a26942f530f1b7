package locale

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

func TestTablesAreComplete(t *testing.T) {
	for _, lang := range entities.Languages {
		t.Run(string(lang), func(t *testing.T) {
			s, ok := tables[lang]
			assert.True(t, ok)

			v := reflect.ValueOf(s)
			for i := range v.NumField() {
				assert.NotEmpty(t, v.Field(i).String(), "%s.%s", lang, v.Type().Field(i).Name)
			}
		})
	}
}

func TestNotice(t *testing.T) {
	s := T(entities.LanguageEnglish)

	assert.Equal(t, "⭐ Added to favorites: #12", s.Notice(book.NoticeAddedToFavorites, 12))
	assert.Equal(t, "❌ Removed from favorites: #3", s.Notice(book.NoticeRemovedFromFavorites, 3))
	assert.Equal(t, "🎲 Random question shown", s.Notice(book.NoticeRandomShown, 0))
	assert.Equal(t, "Failed to load book content.", s.Notice(book.NoticeErrorLoading, 0))
	assert.Empty(t, s.Notice(book.NoticeNone, 0))
}

func TestTFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "The Spirits' Book", T("de").Title)
	assert.Equal(t, "Le Livre des Esprits", T(entities.LanguageFrench).Title)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		code string
		want entities.Language
	}{
		{"", entities.LanguageEnglish},
		{"en", entities.LanguageEnglish},
		{"en-US", entities.LanguageEnglish},
		{"pt", entities.LanguagePortuguese},
		{"pt-BR", entities.LanguagePortuguese},
		{"es", entities.LanguageSpanish},
		{"es-419", entities.LanguageSpanish},
		{"fr-CA", entities.LanguageFrench},
		{"ja", entities.LanguageEnglish},
		{"not a tag!", entities.LanguageEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.code))
		})
	}
}
