package entities

import (
	"errors"
	"fmt"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is a content and UI language code.
type Language string

const (
	LanguagePortuguese Language = "pt-BR"
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguageFrench     Language = "fr"
)

// DefaultLanguage is used when nothing else is known about the reader.
const DefaultLanguage = LanguageEnglish

// Languages lists the supported languages in menu order.
var Languages = []Language{
	LanguagePortuguese,
	LanguageEnglish,
	LanguageSpanish,
	LanguageFrench,
}

// ParseLanguage validates a language code.
func ParseLanguage(code string) (Language, error) {
	for _, l := range Languages {
		if string(l) == code {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

// DataFileName returns the name of the book file for the language.
func (l Language) DataFileName() string {
	return "livro_" + string(l) + ".json"
}

// Next returns the language following l in menu order.
func (l Language) Next() Language {
	for i, lang := range Languages {
		if lang == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return DefaultLanguage
}
