package state

import (
	"sync"
	"testing"

	"englishcard/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_GetDefaultsToIdle(t *testing.T) {
	store := NewMemoryStore()

	assert.Equal(t, domain.Idle{}, store.Get(100))
	assert.Zero(t, store.Len())
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	tests := []struct {
		name     string
		apply    func(s *MemoryStore)
		expected domain.ConversationState
	}{
		{
			name: "quiz replaces add-word dialog",
			apply: func(s *MemoryStore) {
				s.SetAddWordStep(100, AwaitingTarget, "Кот")
				s.SetPendingQuiz(100, 8, "Cat")
			},
			expected: domain.AwaitingAnswer{WordID: 8, Answer: "Cat"},
		},
		{
			name: "add-word dialog replaces quiz",
			apply: func(s *MemoryStore) {
				s.SetPendingQuiz(100, 8, "Cat")
				s.SetAddWordStep(100, AwaitingSource, "")
			},
			expected: domain.AddingSource{},
		},
		{
			name: "newer question replaces older",
			apply: func(s *MemoryStore) {
				s.SetPendingQuiz(100, 8, "Cat")
				s.SetPendingQuiz(100, 9, "House")
			},
			expected: domain.AwaitingAnswer{WordID: 9, Answer: "House"},
		},
		{
			name: "source step ignores scratch",
			apply: func(s *MemoryStore) {
				s.SetAddWordStep(100, AwaitingSource, "Кот")
			},
			expected: domain.AddingSource{},
		},
		{
			name: "target step keeps scratch",
			apply: func(s *MemoryStore) {
				s.SetAddWordStep(100, AwaitingSource, "")
				s.SetAddWordStep(100, AwaitingTarget, "Кот")
			},
			expected: domain.AddingTarget{Source: "Кот"},
		},
		{
			name: "setting idle clears",
			apply: func(s *MemoryStore) {
				s.SetPendingQuiz(100, 8, "Cat")
				s.Set(100, domain.Idle{})
			},
			expected: domain.Idle{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			tt.apply(store)

			assert.Equal(t, tt.expected, store.Get(100))
			if _, idle := tt.expected.(domain.Idle); idle {
				assert.Zero(t, store.Len())
			} else {
				assert.Equal(t, 1, store.Len())
			}
		})
	}
}

func TestMemoryStore_ChatsAreIndependent(t *testing.T) {
	store := NewMemoryStore()

	store.SetPendingQuiz(100, 8, "Cat")
	store.SetAddWordStep(200, AwaitingTarget, "Дом")
	store.Clear(100)

	assert.Equal(t, domain.Idle{}, store.Get(100))
	assert.Equal(t, domain.AddingTarget{Source: "Дом"}, store.Get(200))
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for chat := int64(0); chat < 50; chat++ {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				store.SetPendingQuiz(chatID, int64(i), "Cat")
				_ = store.Get(chatID)
				store.SetAddWordStep(chatID, AwaitingTarget, "Кот")
				store.Clear(chatID)
			}
			store.SetPendingQuiz(chatID, chatID, "Cat")
		}(chat)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
	for chat := int64(0); chat < 50; chat++ {
		assert.Equal(t, domain.AwaitingAnswer{WordID: chat, Answer: "Cat"}, store.Get(chat))
	}
}
