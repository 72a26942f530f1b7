// Package book holds the loaded book contents and the reader navigation state.
package book

import (
	"fmt"
	"iter"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

// Store is the ordered, immutable collection of questions of one language.
// Positions are display order; Question.Number is the stable identity.
type Store struct {
	lang      entities.Language
	questions []entities.Question
}

// NewStore validates the records and builds a store.
// A store is never built from partially valid data.
func NewStore(lang entities.Language, questions []entities.Question) (*Store, error) {
	seen := make(map[int]struct{}, len(questions))
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, ok := seen[q.Number]; ok {
			return nil, fmt.Errorf("record %d: %w: %d", i, entities.ErrDuplicateNumber, q.Number)
		}
		seen[q.Number] = struct{}{}
	}

	cp := make([]entities.Question, len(questions))
	copy(cp, questions)

	return &Store{lang: lang, questions: cp}, nil
}

// EmptyStore returns a store without questions.
func EmptyStore(lang entities.Language) *Store {
	return &Store{lang: lang}
}

// Language returns the language the store was loaded for.
func (s *Store) Language() entities.Language {
	return s.lang
}

// Len returns the number of questions.
func (s *Store) Len() int {
	return len(s.questions)
}

// At returns the question at position i.
func (s *Store) At(i int) (entities.Question, bool) {
	if i < 0 || i >= len(s.questions) {
		return entities.Question{}, false
	}
	return s.questions[i], true
}

// IndexOf returns the position of the question with the given number.
func (s *Store) IndexOf(number int) (int, bool) {
	for i, q := range s.questions {
		if q.Number == number {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether a question with the given number exists.
func (s *Store) Contains(number int) bool {
	_, ok := s.IndexOf(number)
	return ok
}

// All iterates over positions and questions in display order.
func (s *Store) All() iter.Seq2[int, entities.Question] {
	return func(yield func(int, entities.Question) bool) {
		for i, q := range s.questions {
			if !yield(i, q) {
				return
			}
		}
	}
}
