package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps encoded values in process memory, one bucket per session. Expired
// entries are dropped on read and by Sweep.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: map[string]map[string]memoryEntry{},
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStore) Load(_ context.Context, sessionID, key string, dest any) (bool, error) {
	m.mu.Lock()
	entry, ok := m.sessions[sessionID][key]

	if ok && m.expired(entry) {
		m.remove(sessionID, key)

		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, fmt.Errorf("failed to decode session value: %w", err)
	}

	return true, nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode session value: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.sessions[sessionID]
	if !ok {
		bucket = map[string]memoryEntry{}
		m.sessions[sessionID] = bucket
	}

	bucket[key] = memoryEntry{
		data:      data,
		expiresAt: m.now().Add(m.ttl),
	}

	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.remove(sessionID, key)

	return nil
}

func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)

	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0

	for sessionID, bucket := range m.sessions {
		for key, entry := range bucket {
			if m.expired(entry) {
				delete(bucket, key)

				removed++
			}
		}

		if len(bucket) == 0 {
			delete(m.sessions, sessionID)
		}
	}

	return removed
}

// Len returns the number of live entries.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for _, bucket := range m.sessions {
		total += len(bucket)
	}

	return total
}

// remove expects m.mu to be held.
func (m *MemoryStore) remove(sessionID, key string) {
	bucket, ok := m.sessions[sessionID]
	if !ok {
		return
	}

	delete(bucket, key)

	if len(bucket) == 0 {
		delete(m.sessions, sessionID)
	}
}

func (m *MemoryStore) expired(entry memoryEntry) bool {
	return m.ttl > 0 && m.now().After(entry.expiresAt)
}
