package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aliskhannn/spirits-book-bot/internal/book"
	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

// OverrideFileName is the sidecar file that redirects the data directory.
const OverrideFileName = "path.json"

// QuestionRepository loads the book of each language from JSON files
// and keeps the last successfully loaded store per language.
type QuestionRepository struct {
	baseDir   string // directory relative override paths are resolved against
	pluginDir string // directory holding path.json and the default data dir
	dataDir   string // default data directory

	mu     sync.RWMutex
	stores map[entities.Language]*book.Store
}

// NewQuestionRepository creates a repository. pluginDir holds the optional
// path.json sidecar; dataDir is used when no sidecar redirects it.
func NewQuestionRepository(baseDir, pluginDir, dataDir string) *QuestionRepository {
	return &QuestionRepository{
		baseDir:   baseDir,
		pluginDir: pluginDir,
		dataDir:   dataDir,
		stores:    make(map[entities.Language]*book.Store),
	}
}

// DataDir resolves the directory the language files are read from.
// An unreadable or malformed sidecar falls back to the default directory.
func (r *QuestionRepository) DataDir() string {
	raw, err := os.ReadFile(filepath.Join(r.pluginDir, OverrideFileName))
	if err != nil {
		return r.dataDir
	}

	var override struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal(raw, &override); err != nil || override.Path == "" {
		return r.dataDir
	}

	if filepath.IsAbs(override.Path) {
		return override.Path
	}
	return filepath.Join(r.baseDir, override.Path)
}

// PluginDir returns the directory holding the sidecar file.
func (r *QuestionRepository) PluginDir() string {
	return r.pluginDir
}

// Path returns the full path of the language file.
func (r *QuestionRepository) Path(lang entities.Language) string {
	return filepath.Join(r.DataDir(), lang.DataFileName())
}

// Get returns the cached store for lang, loading it on first use.
func (r *QuestionRepository) Get(ctx context.Context, lang entities.Language) (*book.Store, error) {
	r.mu.RLock()
	store, ok := r.stores[lang]
	r.mu.RUnlock()
	if ok {
		return store, nil
	}

	return r.Load(ctx, lang)
}

// Load reads the language file and replaces the cached store on success.
// On failure the cache is left untouched and no store is returned.
func (r *QuestionRepository) Load(ctx context.Context, lang entities.Language) (*book.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := r.Path(lang)
	store, err := readStore(path, lang)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.stores[lang] = store
	r.mu.Unlock()

	return store, nil
}

// Cached reports the languages with a loaded store.
func (r *QuestionRepository) Cached() []entities.Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]entities.Language, 0, len(r.stores))
	for _, l := range entities.Languages {
		if _, ok := r.stores[l]; ok {
			langs = append(langs, l)
		}
	}
	return langs
}

func readStore(path string, lang entities.Language) (*book.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceUnavailable, path, err)
	}

	var questions []entities.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceMalformed, path, err)
	}
	if questions == nil {
		return nil, fmt.Errorf("%w: %s: not an array", ErrResourceMalformed, path)
	}

	store, err := book.NewStore(lang, questions)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceMalformed, path, err)
	}

	return store, nil
}
