// Package sqlite stores reader settings in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/repository"
)

// SettingsRepository is the SQLite counterpart of the PostgreSQL settings store.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository opens (and creates when needed) the database at path.
func NewSettingsRepository(ctx context.Context, path string) (*SettingsRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	r := &SettingsRepository{db: db}
	if err := r.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SettingsRepository) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS chat_settings (
  chat_id INTEGER PRIMARY KEY,
  language_code TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);
`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create chat_settings table: %w", err)
	}
	return nil
}

// Close closes the database.
func (r *SettingsRepository) Close() error {
	return r.db.Close()
}

// Create inserts default settings for a chat. Existing rows are left as is.
func (r *SettingsRepository) Create(ctx context.Context, chatID int64, lang entities.Language) error {
	const stmt = `
INSERT INTO chat_settings (chat_id, language_code, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(chat_id) DO NOTHING;
`
	now := time.Now().Unix()
	if _, err := r.db.ExecContext(ctx, stmt, chatID, string(lang), now, now); err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	return nil
}

// GetByChatID retrieves settings for a chat.
func (r *SettingsRepository) GetByChatID(ctx context.Context, chatID int64) (*entities.Settings, error) {
	const query = `
SELECT chat_id, language_code, created_at, updated_at
FROM chat_settings
WHERE chat_id = ?;
`
	var (
		settings         entities.Settings
		code             string
		created, updated int64
	)
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(&settings.ChatID, &code, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	lang, err := entities.ParseLanguage(code)
	if err != nil {
		lang = entities.DefaultLanguage
	}
	settings.Language = lang
	settings.CreatedAt = time.Unix(created, 0)
	settings.UpdatedAt = time.Unix(updated, 0)

	return &settings, nil
}

// UpdateLanguage sets the chat language, creating the row when missing.
func (r *SettingsRepository) UpdateLanguage(ctx context.Context, chatID int64, lang entities.Language) error {
	const stmt = `
INSERT INTO chat_settings (chat_id, language_code, created_at, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(chat_id) DO UPDATE SET
  language_code = excluded.language_code,
  updated_at = excluded.updated_at;
`
	now := time.Now().Unix()
	if _, err := r.db.ExecContext(ctx, stmt, chatID, string(lang), now, now); err != nil {
		return fmt.Errorf("update language: %w", err)
	}
	return nil
}
