// Package history stores per-chat conversation histories for the bot
// surface. The completion service itself is stateless; this package is what
// lets a Telegram chat carry its context across turns.
package history

import (
	"context"
	"sync"

	assistantpkg "chefbot/pkg/assistant"
)

type Store interface {
	// Messages returns the stored history for a chat in order, empty when
	// the chat is unknown.
	Messages(ctx context.Context, chatID int64) ([]assistantpkg.Message, error)
	// Replace swaps the chat's stored history for the given one.
	Replace(ctx context.Context, chatID int64, messages []assistantpkg.Message) error
	// Clear removes the chat's stored history.
	Clear(ctx context.Context, chatID int64) error
}

// MemoryStore keeps histories in a map keyed by chat id.
type MemoryStore struct {
	mu    sync.RWMutex
	chats map[int64][]assistantpkg.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		chats: make(map[int64][]assistantpkg.Message),
	}
}

func (store *MemoryStore) Messages(_ context.Context, chatID int64) ([]assistantpkg.Message, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	stored := store.chats[chatID]
	messages := make([]assistantpkg.Message, len(stored))
	copy(messages, stored)
	return messages, nil
}

func (store *MemoryStore) Replace(_ context.Context, chatID int64, messages []assistantpkg.Message) error {
	stored := make([]assistantpkg.Message, len(messages))
	copy(stored, messages)

	store.mu.Lock()
	defer store.mu.Unlock()

	store.chats[chatID] = stored
	return nil
}

func (store *MemoryStore) Clear(_ context.Context, chatID int64) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.chats, chatID)
	return nil
}
