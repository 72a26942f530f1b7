package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/repository"
)

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "settings.db")

	repo, err := NewSettingsRepository(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	_, err = repo.GetByChatID(ctx, 0)
	require.ErrorIs(t, err, repository.ErrSettingsNotFound)

	require.NoError(t, repo.Create(ctx, 0, entities.LanguageSpanish))
	// A second create keeps the existing row.
	require.NoError(t, repo.Create(ctx, 0, entities.LanguageFrench))

	settings, err := repo.GetByChatID(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageSpanish, settings.Language)

	require.NoError(t, repo.UpdateLanguage(ctx, 0, entities.LanguagePortuguese))
	settings, err = repo.GetByChatID(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, entities.LanguagePortuguese, settings.Language)

	require.NoError(t, repo.UpdateLanguage(ctx, 9, entities.LanguageFrench))
	settings, err = repo.GetByChatID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), settings.ChatID)
	assert.Equal(t, entities.LanguageFrench, settings.Language)
}

func TestSettingsPersistAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.db")

	repo, err := NewSettingsRepository(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateLanguage(ctx, 0, entities.LanguageFrench))
	require.NoError(t, repo.Close())

	repo, err = NewSettingsRepository(ctx, path)
	require.NoError(t, err)
	defer repo.Close()

	settings, err := repo.GetByChatID(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, entities.LanguageFrench, settings.Language)
}
