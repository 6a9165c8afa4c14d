package state

import (
	"sync"

	"englishcard/internal/domain"
)

// AddStep is the step of the add-word dialog
type AddStep int

const (
	// AwaitingSource waits for the Russian word
	AwaitingSource AddStep = iota
	// AwaitingTarget waits for the English translation
	AwaitingTarget
)

// Store keeps the conversation state of each chat.
// Setting a state replaces whatever the chat had before.
type Store interface {
	Get(chatID int64) domain.ConversationState
	Set(chatID int64, st domain.ConversationState)
	SetPendingQuiz(chatID, wordID int64, answer string)
	SetAddWordStep(chatID int64, step AddStep, source string)
	Clear(chatID int64)
}

// MemoryStore is a process-local Store; state is lost on restart
type MemoryStore struct {
	mu     sync.RWMutex
	states map[int64]domain.ConversationState
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[int64]domain.ConversationState)}
}

// Get returns the chat state, or Idle if the chat has none
func (m *MemoryStore) Get(chatID int64) domain.ConversationState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if st, ok := m.states[chatID]; ok {
		return st
	}
	return domain.Idle{}
}

// Set replaces the chat state. Setting Idle is the same as Clear.
func (m *MemoryStore) Set(chatID int64, st domain.ConversationState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, idle := st.(domain.Idle); idle || st == nil {
		delete(m.states, chatID)
		return
	}
	m.states[chatID] = st
}

// Clear removes all state for the chat
func (m *MemoryStore) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, chatID)
}

// SetPendingQuiz records the question the chat is expected to answer
func (m *MemoryStore) SetPendingQuiz(chatID, wordID int64, answer string) {
	m.Set(chatID, domain.AwaitingAnswer{WordID: wordID, Answer: answer})
}

// SetAddWordStep moves the chat into the given add-word step.
// source is only kept for AwaitingTarget.
func (m *MemoryStore) SetAddWordStep(chatID int64, step AddStep, source string) {
	if step == AwaitingTarget {
		m.Set(chatID, domain.AddingTarget{Source: source})
		return
	}
	m.Set(chatID, domain.AddingSource{})
}

// Len returns the number of chats with an active dialog
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.states)
}

var _ Store = (*MemoryStore)(nil)
