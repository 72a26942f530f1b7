package service

import (
	"context"
	"errors"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
	"github.com/aliskhannn/spirits-book-bot/internal/repository"
)

type SettingsService struct {
	repository SettingsRepository
}

func NewSettingsService(repository SettingsRepository) *SettingsService {
	return &SettingsService{repository: repository}
}

// GetOrCreate returns the chat settings, creating them with fallback as language.
func (s *SettingsService) GetOrCreate(ctx context.Context, chatID int64, fallback entities.Language) (*entities.Settings, error) {
	settings, err := s.repository.GetByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			if err := s.repository.Create(ctx, chatID, fallback); err != nil {
				return nil, err
			}
			return s.repository.GetByChatID(ctx, chatID)
		}
		return nil, err
	}

	return settings, nil
}

func (s *SettingsService) UpdateLanguage(ctx context.Context, chatID int64, lang entities.Language) error {
	return s.repository.UpdateLanguage(ctx, chatID, lang)
}
