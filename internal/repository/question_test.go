package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

const threeRecords = `[
  {"numero": 1, "pergunta": "What is God?", "resposta": "God is the supreme intelligence, first cause of all things."},
  {"numero": 2, "pergunta": "What should we understand by infinity?", "resposta": "That which has neither beginning nor end."},
  {"numero": 3, "pergunta": "Could we say that God is infinity?", "resposta": "An incomplete definition."}
]`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestRepository(t *testing.T) (*QuestionRepository, string) {
	t.Helper()
	base := t.TempDir()
	pluginDir := filepath.Join(base, "plugin")
	dataDir := filepath.Join(pluginDir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	return NewQuestionRepository(base, pluginDir, dataDir), base
}

func TestLoadWellFormedFile(t *testing.T) {
	repo, base := newTestRepository(t)
	writeFile(t, filepath.Join(base, "plugin", "data", "livro_en.json"), threeRecords)

	store, err := repo.Load(context.Background(), entities.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())

	q, ok := store.At(0)
	require.True(t, ok)
	assert.Equal(t, "What is God?", q.Question)
	assert.Equal(t, "God is the supreme intelligence, first cause of all things.", q.Answer)
	assert.Equal(t, []entities.Language{entities.LanguageEnglish}, repo.Cached())
}

func TestLoadMissingFile(t *testing.T) {
	repo, _ := newTestRepository(t)

	store, err := repo.Load(context.Background(), entities.LanguageFrench)
	require.ErrorIs(t, err, ErrResourceUnavailable)
	assert.Nil(t, store)
	assert.Empty(t, repo.Cached())
}

func TestLoadMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{{{`},
		{"object instead of array", `{"numero": 1}`},
		{"null", `null`},
		{"wrong field type", `[{"numero": "1", "pergunta": "q", "resposta": "a"}]`},
		{"missing answer", `[{"numero": 1, "pergunta": "q"}]`},
		{"duplicate numbers", `[{"numero": 1, "pergunta": "q", "resposta": "a"}, {"numero": 1, "pergunta": "q", "resposta": "a"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, base := newTestRepository(t)
			writeFile(t, filepath.Join(base, "plugin", "data", "livro_es.json"), tt.content)

			store, err := repo.Load(context.Background(), entities.LanguageSpanish)
			require.ErrorIs(t, err, ErrResourceMalformed)
			assert.Nil(t, store)
		})
	}
}

func TestFailedReloadKeepsPreviousStore(t *testing.T) {
	repo, base := newTestRepository(t)
	path := filepath.Join(base, "plugin", "data", "livro_en.json")
	writeFile(t, path, threeRecords)

	first, err := repo.Get(context.Background(), entities.LanguageEnglish)
	require.NoError(t, err)

	writeFile(t, path, `broken`)
	_, err = repo.Load(context.Background(), entities.LanguageEnglish)
	require.ErrorIs(t, err, ErrResourceMalformed)

	cached, err := repo.Get(context.Background(), entities.LanguageEnglish)
	require.NoError(t, err)
	assert.Same(t, first, cached)
}

func TestDataDirOverride(t *testing.T) {
	t.Run("relative path", func(t *testing.T) {
		repo, base := newTestRepository(t)
		writeFile(t, filepath.Join(base, "plugin", OverrideFileName), `{"path": "books"}`)
		writeFile(t, filepath.Join(base, "books", "livro_pt-BR.json"), threeRecords)

		assert.Equal(t, filepath.Join(base, "books"), repo.DataDir())

		store, err := repo.Load(context.Background(), entities.LanguagePortuguese)
		require.NoError(t, err)
		assert.Equal(t, 3, store.Len())
	})

	t.Run("absolute path", func(t *testing.T) {
		repo, base := newTestRepository(t)
		abs := t.TempDir()
		writeFile(t, filepath.Join(base, "plugin", OverrideFileName), `{"path": "`+filepath.ToSlash(abs)+`"}`)

		assert.Equal(t, filepath.ToSlash(abs), filepath.ToSlash(repo.DataDir()))
	})

	t.Run("malformed sidecar falls back", func(t *testing.T) {
		repo, base := newTestRepository(t)
		writeFile(t, filepath.Join(base, "plugin", OverrideFileName), `nope`)

		assert.Equal(t, filepath.Join(base, "plugin", "data"), repo.DataDir())
	})

	t.Run("no sidecar", func(t *testing.T) {
		repo, base := newTestRepository(t)
		assert.Equal(t, filepath.Join(base, "plugin", "data"), repo.DataDir())
	})
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx, entities.LanguageEnglish)
	assert.ErrorIs(t, err, context.Canceled)
}
