package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/spirits-book-bot/internal/repository"
)

const sampleBook = `[
  {"numero": 1, "pergunta": "What is God?", "resposta": "God is the supreme intelligence."},
  {"numero": 2, "pergunta": "Where can we find the proof of the existence of God?", "resposta": "In an axiom."}
]`

func newTestRepository(t *testing.T, files map[string]string) *repository.QuestionRepository {
	t.Helper()

	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644))
	}

	return repository.NewQuestionRepository(dir, dir, dataDir)
}

func TestRunCheckReportsFailures(t *testing.T) {
	repo := newTestRepository(t, map[string]string{
		"livro_en.json":    sampleBook,
		"livro_pt-BR.json": sampleBook,
		"livro_es.json":    sampleBook,
		"livro_fr.json":    `{"numero": 1}`,
	})

	var out bytes.Buffer
	err := runCheck(context.Background(), &out, repo)

	require.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out.String(), "en     ok    2 questions")
	assert.Contains(t, out.String(), "fr     FAIL")
}

func TestRunCheckPasses(t *testing.T) {
	repo := newTestRepository(t, map[string]string{
		"livro_en.json":    sampleBook,
		"livro_pt-BR.json": sampleBook,
		"livro_es.json":    sampleBook,
		"livro_fr.json":    sampleBook,
	})

	var out bytes.Buffer
	require.NoError(t, runCheck(context.Background(), &out, repo))
}

func TestRunShow(t *testing.T) {
	repo := newTestRepository(t, map[string]string{"livro_en.json": sampleBook})

	var out bytes.Buffer
	require.NoError(t, runShow(context.Background(), &out, repo, "en", "2"))
	assert.Contains(t, out.String(), "In an axiom.")

	err := runShow(context.Background(), &out, repo, "en", "7")
	assert.EqualError(t, err, "Question not found.: #7")

	assert.Error(t, runShow(context.Background(), &out, repo, "en", "2x"))
	assert.Error(t, runShow(context.Background(), &out, repo, "de", "1"))
}

func TestOSLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "C")
	t.Setenv("LANG", "pt_BR.UTF-8")

	assert.Equal(t, "pt-BR", osLocale())

	t.Setenv("LANG", "")
	assert.Empty(t, osLocale())
}
