package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/repository"
	"github.com/aliskhannn/spirits-book-bot/internal/storage"
)

type fakeSettingsRepo struct {
	settings map[int64]*entities.Settings
	getErr   error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[int64]*entities.Settings)}
}

func (r *fakeSettingsRepo) Create(_ context.Context, chatID int64, lang entities.Language) error {
	if _, ok := r.settings[chatID]; !ok {
		r.settings[chatID] = entities.NewSettings(chatID, lang)
	}
	return nil
}

func (r *fakeSettingsRepo) GetByChatID(_ context.Context, chatID int64) (*entities.Settings, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	s, ok := r.settings[chatID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	return s, nil
}

func (r *fakeSettingsRepo) UpdateLanguage(_ context.Context, chatID int64, lang entities.Language) error {
	r.settings[chatID] = entities.NewSettings(chatID, lang)
	return nil
}

type fakeQuestionRepo struct {
	stores map[entities.Language]*book.Store
	loads  int
}

func (r *fakeQuestionRepo) Get(ctx context.Context, lang entities.Language) (*book.Store, error) {
	return r.Load(ctx, lang)
}

func (r *fakeQuestionRepo) Load(_ context.Context, lang entities.Language) (*book.Store, error) {
	r.loads++
	s, ok := r.stores[lang]
	if !ok {
		return nil, repository.ErrResourceUnavailable
	}
	return s, nil
}

func mustStore(t *testing.T, lang entities.Language, numbers ...int) *book.Store {
	t.Helper()
	qs := make([]entities.Question, 0, len(numbers))
	for _, n := range numbers {
		qs = append(qs, entities.Question{Number: n, Question: "q", Answer: "a"})
	}
	s, err := book.NewStore(lang, qs)
	require.NoError(t, err)
	return s
}

func newTestBookService(t *testing.T) (*BookService, *fakeQuestionRepo, *fakeSettingsRepo) {
	t.Helper()
	questions := &fakeQuestionRepo{stores: map[entities.Language]*book.Store{
		entities.LanguageEnglish: mustStore(t, entities.LanguageEnglish, 1, 2, 3),
		entities.LanguageFrench:  mustStore(t, entities.LanguageFrench, 1, 3),
	}}
	settingsRepo := newFakeSettingsRepo()
	svc := NewBookService(questions, storage.NewSessionStorage(), NewSettingsService(settingsRepo), zap.NewNop())
	return svc, questions, settingsRepo
}

func TestOpenUsesClientLanguageForNewChats(t *testing.T) {
	svc, _, settingsRepo := newTestBookService(t)

	session, err := svc.Open(context.Background(), 10, "fr-CA")
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageFrench, session.Store().Language())
	assert.Equal(t, entities.LanguageFrench, settingsRepo.settings[10].Language)

	again, err := svc.Open(context.Background(), 10, "en")
	require.NoError(t, err)
	assert.Same(t, session, again)
	assert.Equal(t, entities.LanguageFrench, again.Store().Language())
}

func TestOpenMissingBookLeavesEmptySession(t *testing.T) {
	svc, _, _ := newTestBookService(t)

	session, err := svc.Open(context.Background(), 11, "es")
	require.ErrorIs(t, err, ErrBookUnavailable)
	require.ErrorIs(t, err, repository.ErrResourceUnavailable)
	require.NotNil(t, session)
	assert.Zero(t, session.Len())
	assert.False(t, session.Next())
}

func TestOpenFallsBackWhenSettingsFail(t *testing.T) {
	svc, _, settingsRepo := newTestBookService(t)
	settingsRepo.getErr = errors.New("db down")

	session, err := svc.Open(context.Background(), 12, "fr")
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageFrench, session.Store().Language())
}

func TestSetLanguageRebindsAndKeepsFavoritesByNumber(t *testing.T) {
	svc, _, _ := newTestBookService(t)
	ctx := context.Background()

	session, err := svc.Open(ctx, 13, "en")
	require.NoError(t, err)
	for _, idx := range []int{0, 1, 2} {
		session.ShowQuestion(idx)
		session.ToggleFavorite()
	}

	session, err = svc.SetLanguage(ctx, 13, entities.LanguageFrench)
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageFrench, session.Store().Language())
	assert.True(t, session.IsFavorite(1))
	assert.False(t, session.IsFavorite(2))
	assert.True(t, session.IsFavorite(3))
	assert.Equal(t, 1, session.Index())
}

func TestReloadAllJoinsErrors(t *testing.T) {
	svc, questions, _ := newTestBookService(t)

	err := svc.ReloadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrResourceUnavailable)
	assert.Equal(t, len(entities.Languages), questions.loads)

	require.NoError(t, svc.Reload(context.Background(), entities.LanguageEnglish))
}

func TestClose(t *testing.T) {
	svc, _, _ := newTestBookService(t)
	first, err := svc.Open(context.Background(), 14, "en")
	require.NoError(t, err)

	svc.Close(14)

	second, err := svc.Open(context.Background(), 14, "en")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestJanitorSweep(t *testing.T) {
	sessions := storage.NewSessionStorage()
	sessions.Store(1, book.NewSession(nil))

	j := NewSessionJanitor(sessions, time.Hour, time.Minute, zap.NewNop())
	assert.Zero(t, j.Sweep())

	j = NewSessionJanitor(sessions, -time.Second, time.Minute, zap.NewNop())
	assert.Equal(t, 1, j.Sweep())
}

func TestOpenUsesDefaultLanguageWithoutLocale(t *testing.T) {
	svc, _, _ := newTestBookService(t)
	svc.SetDefaultLanguage(entities.LanguageFrench)

	session, err := svc.Open(context.Background(), 20, "")
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageFrench, session.Store().Language())
}

func TestLoadLeavesSessionsAlone(t *testing.T) {
	svc, _, _ := newTestBookService(t)
	ctx := context.Background()

	session, err := svc.Open(ctx, 21, "en")
	require.NoError(t, err)

	store, err := svc.SwitchLanguage(ctx, 21, entities.LanguageFrench)
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageFrench, store.Language())
	assert.Equal(t, entities.LanguageEnglish, session.Store().Language())

	store, err = svc.Load(ctx, 21, "en")
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageFrench, store.Language())
}

func TestLoadMissingBookReturnsEmptyStore(t *testing.T) {
	svc, _, _ := newTestBookService(t)

	store, err := svc.Load(context.Background(), 22, "es")
	require.ErrorIs(t, err, ErrBookUnavailable)
	require.NotNil(t, store)
	assert.Equal(t, entities.LanguageSpanish, store.Language())
	assert.Zero(t, store.Len())
}
