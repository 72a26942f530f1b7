package book

import (
	"iter"
	"math/rand/v2"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

// Session is the navigation and favorites state of one reader.
// It is not safe for concurrent use; every front end drives it from a single goroutine.
type Session struct {
	store     *Store
	index     int
	favorites map[int]struct{}
	tab       Tab
	intn      func(n int) int
}

// Option configures a Session.
type Option func(*Session)

// WithRandom replaces the random index source used by ShowRandom.
// intn must return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(s *Session) {
		s.intn = intn
	}
}

// NewSession creates a session positioned on the first question of store.
func NewSession(store *Store, opts ...Option) *Session {
	if store == nil {
		store = EmptyStore(entities.DefaultLanguage)
	}
	s := &Session{
		store:     store,
		favorites: make(map[int]struct{}),
		intn:      rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the store the session currently navigates.
func (s *Session) Store() *Store {
	return s.store
}

// Len returns the number of questions available.
func (s *Session) Len() int {
	return s.store.Len()
}

// Index returns the current position.
func (s *Session) Index() int {
	return s.index
}

// Tab returns the active listing.
func (s *Session) Tab() Tab {
	return s.tab
}

// Current returns the question at the current position.
func (s *Session) Current() (entities.Question, bool) {
	return s.store.At(s.index)
}

// ShowQuestion moves to index. It reports false and changes nothing
// when index is outside [0, Len()).
func (s *Session) ShowQuestion(index int) bool {
	if index < 0 || index >= s.store.Len() {
		return false
	}
	s.index = index
	return true
}

// Next moves one question forward; it does not wrap.
func (s *Session) Next() bool {
	return s.ShowQuestion(s.index + 1)
}

// Previous moves one question back; it does not wrap.
func (s *Session) Previous() bool {
	return s.ShowQuestion(s.index - 1)
}

// ShowRandom jumps to a uniformly chosen question.
func (s *Session) ShowRandom() (Notice, bool) {
	n := s.store.Len()
	if n == 0 {
		return NoticeNone, false
	}
	s.ShowQuestion(s.intn(n))
	return NoticeRandomShown, true
}

// ToggleFavorite flips the favorite flag of the current question.
func (s *Session) ToggleFavorite() (Notice, bool) {
	q, ok := s.Current()
	if !ok {
		return NoticeNone, false
	}
	if _, fav := s.favorites[q.Number]; fav {
		delete(s.favorites, q.Number)
		return NoticeRemovedFromFavorites, true
	}
	s.favorites[q.Number] = struct{}{}
	return NoticeAddedToFavorites, true
}

// IsFavorite reports whether the question number is a favorite.
func (s *Session) IsFavorite(number int) bool {
	_, ok := s.favorites[number]
	return ok
}

// FavoriteCount returns the number of favorites.
func (s *Session) FavoriteCount() int {
	return len(s.favorites)
}

// ListFavorites yields favorite questions in store order.
// The sequence is computed on every iteration.
func (s *Session) ListFavorites() iter.Seq[entities.Question] {
	return func(yield func(entities.Question) bool) {
		for _, q := range s.store.All() {
			if _, ok := s.favorites[q.Number]; !ok {
				continue
			}
			if !yield(q) {
				return
			}
		}
	}
}

// SelectByFavorite switches to the All tab and moves to the question with number.
func (s *Session) SelectByFavorite(number int) bool {
	idx, ok := s.store.IndexOf(number)
	if !ok {
		return false
	}
	s.tab = TabAll
	return s.ShowQuestion(idx)
}

// SetTab changes the active listing. Position and favorites are untouched.
func (s *Session) SetTab(tab Tab) {
	s.tab = tab
}

// ShowFavorites switches to the Favorites tab. It reports NoticeNoFavorites
// when there is nothing to list.
func (s *Session) ShowFavorites() Notice {
	s.tab = TabFavorites
	if len(s.favorites) == 0 {
		return NoticeNoFavorites
	}
	return NoticeNone
}

// Rebind swaps the store, e.g. after a language change or a reload.
// Favorites whose number no longer exists are dropped and the current
// question is kept by number when possible.
func (s *Session) Rebind(store *Store) {
	if store == nil || store == s.store {
		return
	}

	current, hadCurrent := s.Current()
	s.store = store

	for number := range s.favorites {
		if !store.Contains(number) {
			delete(s.favorites, number)
		}
	}

	if hadCurrent {
		if idx, ok := store.IndexOf(current.Number); ok {
			s.index = idx
			return
		}
	}

	switch {
	case store.Len() == 0:
		s.index = 0
	case s.index >= store.Len():
		s.index = store.Len() - 1
	case s.index < 0:
		s.index = 0
	}
}
