package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/locale"
)

var ErrBookUnavailable = errors.New("book unavailable")

// BookService hands out reader sessions bound to the book of the reader's language.
type BookService struct {
	questions QuestionRepository
	sessions  SessionStorage
	settings  *SettingsService
	logger    *zap.Logger
	fallback  entities.Language
}

func NewBookService(
	questions QuestionRepository,
	sessions SessionStorage,
	settings *SettingsService,
	logger *zap.Logger,
) *BookService {
	return &BookService{
		questions: questions,
		sessions:  sessions,
		settings:  settings,
		logger:    logger,
		fallback:  entities.DefaultLanguage,
	}
}

// SetDefaultLanguage sets the language of new readers whose locale is unknown.
func (s *BookService) SetDefaultLanguage(lang entities.Language) {
	s.fallback = lang
}

// Open returns the chat's session rebound to the latest store of the chat language.
// clientLang is the reader's locale and only used for new chats.
// When the book cannot be loaded the session is bound to an empty store and an
// error wrapping ErrBookUnavailable is returned alongside it.
func (s *BookService) Open(ctx context.Context, chatID int64, clientLang string) (*book.Session, error) {
	store, err := s.Load(ctx, chatID, clientLang)

	session, ok := s.sessions.Get(chatID)
	if !ok {
		session = book.NewSession(book.EmptyStore(store.Language()))
		s.sessions.Store(chatID, session)
	}

	if err != nil {
		if session.Store().Language() != store.Language() || session.Len() > 0 {
			session.Rebind(store)
		}
		return session, err
	}

	session.Rebind(store)
	return session, nil
}

// Load returns the latest store of the chat language without touching any
// session, for front ends that own their session. When the book cannot be
// loaded an empty store of that language is returned with an error wrapping
// ErrBookUnavailable.
func (s *BookService) Load(ctx context.Context, chatID int64, clientLang string) (*book.Store, error) {
	lang := s.language(ctx, chatID, clientLang)

	store, err := s.questions.Get(ctx, lang)
	if err != nil {
		s.logger.Error("failed to load book",
			zap.Int64("chat_id", chatID),
			zap.String("lang", string(lang)),
			zap.Error(err),
		)
		return book.EmptyStore(lang), fmt.Errorf("%w: %w", ErrBookUnavailable, err)
	}

	return store, nil
}

// SetLanguage stores the chat language and returns the session rebound to its book.
func (s *BookService) SetLanguage(ctx context.Context, chatID int64, lang entities.Language) (*book.Session, error) {
	if err := s.saveLanguage(ctx, chatID, lang); err != nil {
		return nil, err
	}
	return s.Open(ctx, chatID, string(lang))
}

// SwitchLanguage stores the chat language and returns its book. A nil store
// means the language could not be stored.
func (s *BookService) SwitchLanguage(ctx context.Context, chatID int64, lang entities.Language) (*book.Store, error) {
	if err := s.saveLanguage(ctx, chatID, lang); err != nil {
		return nil, err
	}
	return s.Load(ctx, chatID, string(lang))
}

// Reload re-reads the book of lang. Sessions pick the new store up on their next Open.
func (s *BookService) Reload(ctx context.Context, lang entities.Language) error {
	store, err := s.questions.Load(ctx, lang)
	if err != nil {
		return fmt.Errorf("reload %s: %w", lang, err)
	}

	s.logger.Info("book reloaded",
		zap.String("lang", string(lang)),
		zap.Int("questions", store.Len()),
	)
	return nil
}

// ReloadAll re-reads the books of every supported language.
func (s *BookService) ReloadAll(ctx context.Context) error {
	var errs []error
	for _, lang := range entities.Languages {
		if err := s.Reload(ctx, lang); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close drops the chat's session.
func (s *BookService) Close(chatID int64) {
	s.sessions.Delete(chatID)
}

func (s *BookService) saveLanguage(ctx context.Context, chatID int64, lang entities.Language) error {
	if err := s.settings.UpdateLanguage(ctx, chatID, lang); err != nil {
		return fmt.Errorf("update language: %w", err)
	}

	s.logger.Info("language changed",
		zap.Int64("chat_id", chatID),
		zap.String("lang", string(lang)),
	)
	return nil
}

func (s *BookService) language(ctx context.Context, chatID int64, clientLang string) entities.Language {
	fallback := s.fallback
	if clientLang != "" {
		fallback = locale.Match(clientLang)
	}

	settings, err := s.settings.GetOrCreate(ctx, chatID, fallback)
	if err != nil {
		s.logger.Warn("failed to get settings, using client language",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return fallback
	}

	return settings.Language
}
