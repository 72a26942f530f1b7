package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/spirits-book-bot/internal/domain/entities"
)

func TestNewStoreRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name      string
		questions []entities.Question
		wantErr   error
	}{
		{
			name:      "missing number",
			questions: []entities.Question{{Question: "q", Answer: "a"}},
			wantErr:   entities.ErrInvalidNumber,
		},
		{
			name:      "missing question",
			questions: []entities.Question{{Number: 1, Answer: "a"}},
			wantErr:   entities.ErrEmptyQuestion,
		},
		{
			name:      "missing answer",
			questions: []entities.Question{{Number: 1, Question: "q"}},
			wantErr:   entities.ErrEmptyAnswer,
		},
		{
			name: "duplicate number",
			questions: []entities.Question{
				{Number: 1, Question: "q", Answer: "a"},
				{Number: 1, Question: "q2", Answer: "a2"},
			},
			wantErr: entities.ErrDuplicateNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(entities.LanguageEnglish, tt.questions)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, store)
		})
	}
}

func TestStoreLookup(t *testing.T) {
	store, err := NewStore(entities.LanguageEnglish, testQuestions())
	require.NoError(t, err)

	assert.Equal(t, 4, store.Len())

	idx, ok := store.IndexOf(4)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = store.IndexOf(3)
	assert.False(t, ok)

	_, ok = store.At(4)
	assert.False(t, ok)

	var numbers []int
	for _, q := range store.All() {
		numbers = append(numbers, q.Number)
	}
	assert.Equal(t, []int{1, 2, 4, 7}, numbers)
}
