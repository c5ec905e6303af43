// Package session keeps the conversation state of every chat between updates.
package session

import (
	"context"
	"sync"
	"time"

	"fitness-bot/internal/dialog"
)

// Store loads and saves per-chat state. Load returns dialog.Default() for an
// unknown or expired chat.
type Store interface {
	Load(ctx context.Context, chatID int64) (dialog.State, error)
	Save(ctx context.Context, chatID int64, s dialog.State) error
	Delete(ctx context.Context, chatID int64) error
}

type entry struct {
	state    dialog.State
	lastSeen time.Time
}

// MemoryStore is lost on restart. Idle chats are dropped by Sweep.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]entry
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]entry),
		now:      time.Now,
	}
}

func (m *MemoryStore) Load(_ context.Context, chatID int64) (dialog.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[chatID]
	if !ok {
		return dialog.Default(), nil
	}
	e.lastSeen = m.now()
	m.sessions[chatID] = e
	return e.state, nil
}

func (m *MemoryStore) Save(_ context.Context, chatID int64, s dialog.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[chatID] = entry{state: s, lastSeen: m.now()}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, chatID)
	return nil
}

// Sweep evicts sessions not touched for longer than idle and returns how many went.
func (m *MemoryStore) Sweep(idle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-idle)
	evicted := 0
	for chatID, e := range m.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(m.sessions, chatID)
			evicted++
		}
	}
	return evicted
}

// Len is the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
