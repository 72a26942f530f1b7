package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

func TestDecodeCallback(t *testing.T) {
	tests := []struct {
		data       string
		wantAction string
		wantParams []string
	}{
		{buildNavCallback(navNext), actionNav, []string{navNext}},
		{buildFavoriteCallback(), actionFavorite, []string{}},
		{buildTabCallback(tabFavorites, 2), actionTab, []string{tabFavorites, "2"}},
		{buildSelectCallback(1019), actionSelect, []string{"1019"}},
		{buildLanguageCallback(entities.LanguagePortuguese), actionLanguage, []string{"pt-BR"}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			cd := decodeCallback(tt.data)
			assert.Equal(t, tt.wantAction, cd.Action)
			assert.Equal(t, tt.wantParams, cd.Params)
			assert.Equal(t, tt.data, cd.Raw)
			assert.LessOrEqual(t, len(tt.data), 64)
		})
	}
}

func TestCallbackParams(t *testing.T) {
	cd := decodeCallback("list:3:x")

	n, ok := cd.intParam(0)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = cd.intParam(1)
	assert.False(t, ok)
	_, ok = cd.intParam(5)
	assert.False(t, ok)

	assert.Equal(t, "x", cd.param(1))
	assert.Empty(t, cd.param(2))
}
