package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/infra/postgres"
	"github.com/aliskhannn/spirits-book-bot/internal/repository"
)

// SettingsRepository stores chat settings in PostgreSQL.
type SettingsRepository struct {
	db postgres.DBTX
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db postgres.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Create inserts default settings for a chat. Existing rows are left as is.
func (r *SettingsRepository) Create(ctx context.Context, chatID int64, lang entities.Language) error {
	query := `
		INSERT INTO chat_settings (chat_id, language_code, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (chat_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, chatID, string(lang)); err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByChatID retrieves settings for a chat.
func (r *SettingsRepository) GetByChatID(ctx context.Context, chatID int64) (*entities.Settings, error) {
	query := `
		SELECT chat_id, language_code, created_at, updated_at
		FROM chat_settings
		WHERE chat_id = $1
	`

	var (
		settings entities.Settings
		code     string
	)
	err := r.db.QueryRow(ctx, query, chatID).Scan(
		&settings.ChatID,
		&code,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}

	lang, err := entities.ParseLanguage(code)
	if err != nil {
		lang = entities.DefaultLanguage
	}
	settings.Language = lang

	return &settings, nil
}

// UpdateLanguage sets the chat language, creating the row when missing.
func (r *SettingsRepository) UpdateLanguage(ctx context.Context, chatID int64, lang entities.Language) error {
	query := `
		INSERT INTO chat_settings (chat_id, language_code, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (chat_id) DO UPDATE
		SET language_code = EXCLUDED.language_code,
		    updated_at = NOW()
	`

	if _, err := r.db.Exec(ctx, query, chatID, string(lang)); err != nil {
		return fmt.Errorf("update language: %w", err)
	}

	return nil
}
