// Package session holds the per-client admin and employee sessions, the
// route guard that consults them and the inactivity monitors that expire them.
package session

import (
	"context"
	"errors"
	"sync"

	"ems-portal/internal/core/domain"
)

// Persisted keys, one per role
const (
	KeyAdmin    = "admin_session"
	KeyEmployee = "employee_session"
)

// ErrNoValue is returned by Store.Get when nothing is stored under the key
var ErrNoValue = errors.New("session: no value stored")

// Store persists raw session snapshots per client
type Store interface {
	Get(ctx context.Context, clientID, key string) ([]byte, error)
	Put(ctx context.Context, clientID, key string, value []byte) error
	Delete(ctx context.Context, clientID, key string) error
}

// KeyFor returns the persisted key of a role
func KeyFor(role domain.Role) string {
	if role == domain.RoleAdmin {
		return KeyAdmin
	}
	return KeyEmployee
}

// MemoryStore keeps snapshots in process memory
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, clientID, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[clientID][key]
	if !ok {
		return nil, ErrNoValue
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Put(_ context.Context, clientID, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.data[clientID]
	if !ok {
		entries = make(map[string][]byte)
		s.data[clientID] = entries
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	entries[key] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, clientID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entries, ok := s.data[clientID]; ok {
		delete(entries, key)
		if len(entries) == 0 {
			delete(s.data, clientID)
		}
	}
	return nil
}
