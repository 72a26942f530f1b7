// Package watcher reloads book files when they change on disk.
package watcher

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/repository"
)

// Reloader re-reads books.
type Reloader interface {
	Reload(ctx context.Context, lang entities.Language) error
	ReloadAll(ctx context.Context) error
}

// Dirs resolves the directories to watch.
type Dirs interface {
	DataDir() string
	PluginDir() string
}

const reloadAll = "*"

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches the data directory and the sidecar override file.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	reloader Reloader
	dirs     Dirs
	logger   *zap.Logger
	dataDir  string
	pending  map[string]time.Time // language code or reloadAll -> last event
	debounce time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// New creates a Watcher. Events on the same file closer than debounce are coalesced.
func New(reloader Reloader, dirs Dirs, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		watcher:  w,
		reloader: reloader,
		dirs:     dirs,
		logger:   logger,
		pending:  make(map[string]time.Time),
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.dirs.PluginDir()); err != nil {
		w.logger.Warn("failed to watch plugin dir",
			zap.String("path", w.dirs.PluginDir()),
			zap.Error(err),
		)
	}
	w.watchDataDir()

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("failed to close watcher", zap.Error(err))
	}
}

// Run starts the watcher and blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	w.Stop()
	return nil
}

func (w *Watcher) watchDataDir() {
	dir := w.dirs.DataDir()
	if dir == w.dataDir {
		return
	}
	if w.dataDir != "" && w.dataDir != w.dirs.PluginDir() {
		_ = w.watcher.Remove(w.dataDir)
	}
	if err := w.watcher.Add(dir); err != nil {
		w.logger.Warn("failed to watch data dir",
			zap.String("path", dir),
			zap.Error(err),
		)
	} else {
		w.logger.Info("watching data dir", zap.String("path", dir))
	}
	w.dataDir = dir
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 4)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", zap.Error(err))
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	key, ok := keyFor(event.Name)
	if !ok {
		return
	}

	w.logger.Debug("book file changed",
		zap.String("path", event.Name),
		zap.String("op", event.Op.String()),
	)
	w.pending[key] = time.Now()
}

func (w *Watcher) flush(ctx context.Context) {
	now := time.Now()
	for key, at := range w.pending {
		if now.Sub(at) < w.debounce {
			continue
		}
		delete(w.pending, key)

		if key == reloadAll {
			w.watchDataDir()
			if err := w.reloader.ReloadAll(ctx); err != nil {
				w.logger.Warn("reload after override change", zap.Error(err))
			}
			continue
		}

		lang := entities.Language(key)
		if err := w.reloader.Reload(ctx, lang); err != nil {
			w.logger.Warn("reload after file change",
				zap.String("lang", key),
				zap.Error(err),
			)
		}
	}
}

// keyFor maps a changed file to what has to be reloaded.
func keyFor(path string) (string, bool) {
	name := filepath.Base(path)
	if name == repository.OverrideFileName {
		return reloadAll, true
	}

	code, ok := strings.CutPrefix(name, "livro_")
	if !ok {
		return "", false
	}
	code, ok = strings.CutSuffix(code, ".json")
	if !ok {
		return "", false
	}

	lang, err := entities.ParseLanguage(code)
	if err != nil {
		return "", false
	}
	return string(lang), true
}
