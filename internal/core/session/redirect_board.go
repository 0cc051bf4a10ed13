package session

import (
	"sync"
	"time"

	"ems-portal/internal/core/domain"
)

// PendingRedirect is a navigation the UI has not picked up yet
type PendingRedirect struct {
	Location string    `json:"location"`
	Replace  bool      `json:"replace"`
	At       time.Time `json:"at"`
}

// RedirectBoard is the server-side Navigator: it keeps the latest redirect
// per client and role until the UI reads it
type RedirectBoard struct {
	clock Clock

	mu      sync.Mutex
	pending map[monitorKey]PendingRedirect
}

// NewRedirectBoard creates an empty board
func NewRedirectBoard(clock Clock) *RedirectBoard {
	if clock == nil {
		clock = RealClock()
	}
	return &RedirectBoard{clock: clock, pending: make(map[monitorKey]PendingRedirect)}
}

// Navigate implements Navigator
func (b *RedirectBoard) Navigate(clientID string, role domain.Role, location string, replace bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[monitorKey{clientID, role}] = PendingRedirect{Location: location, Replace: replace, At: b.clock.Now()}
}

// Take returns and removes the pending redirect of the client's role
func (b *RedirectBoard) Take(clientID string, role domain.Role) (PendingRedirect, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := monitorKey{clientID, role}
	r, ok := b.pending[key]
	if ok {
		delete(b.pending, key)
	}
	return r, ok
}

// Clear drops the pending redirect of the client's role
func (b *RedirectBoard) Clear(clientID string, role domain.Role) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, monitorKey{clientID, role})
}
