package entities

import (
	"time"
)

// Settings stores per-chat reader preferences.
type Settings struct {
	ChatID    int64
	Language  Language // content and UI language
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSettings creates settings with the given language.
func NewSettings(chatID int64, lang Language) *Settings {
	now := time.Now()
	return &Settings{
		ChatID:    chatID,
		Language:  lang,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
