package entities

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// PreviewLength is the number of question runes shown in selection lists.
const PreviewLength = 50

var (
	ErrInvalidNumber   = errors.New("question number must be positive")
	ErrEmptyQuestion   = errors.New("question text is empty")
	ErrEmptyAnswer     = errors.New("answer text is empty")
	ErrDuplicateNumber = errors.New("duplicate question number")
)

// Question is a single question/answer pair of the book.
// Number is the stable identity of the record; positions in a store are not.
type Question struct {
	Number   int    `json:"numero"`   // question number as printed in the book
	Question string `json:"pergunta"` // question text
	Answer   string `json:"resposta"` // answer text
}

// Validate reports whether the record carries every required field.
func (q Question) Validate() error {
	if q.Number <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidNumber, q.Number)
	}
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("question %d: %w", q.Number, ErrEmptyQuestion)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fmt.Errorf("question %d: %w", q.Number, ErrEmptyAnswer)
	}
	return nil
}

// Preview returns "#N - text" with the question truncated to limit runes.
func (q Question) Preview(limit int) string {
	text := strings.TrimSpace(q.Question)
	if text == "" {
		text = "..."
	}
	if limit > 0 && utf8.RuneCountInString(text) > limit {
		text = string([]rune(text)[:limit])
	}
	return fmt.Sprintf("#%d - %s", q.Number, text)
}
