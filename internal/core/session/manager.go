package session

import (
	"context"
	"sync"
	"time"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/logger"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

// DefaultCacheSize is the number of client holders kept in memory
const DefaultCacheSize = 1024

// Navigator performs the redirect that follows a forced logout
type Navigator interface {
	Navigate(clientID string, role domain.Role, location string, replace bool)
}

type monitorKey struct {
	clientID string
	role     domain.Role
}

// Manager owns the holders and the inactivity monitors of every client
type Manager struct {
	store     Store
	clock     Clock
	idle      time.Duration
	navigator Navigator
	onExpire  func(role domain.Role)
	cacheSize int

	holders *lru.Cache[string, *Holder]

	mu       sync.Mutex
	monitors map[monitorKey]*Monitor
	closed   bool
}

// Option configures a Manager
type Option func(*Manager)

// WithClock replaces the wall clock
func WithClock(clock Clock) Option {
	return func(m *Manager) { m.clock = clock }
}

// WithIdleTimeout overrides IdleTimeout
func WithIdleTimeout(d time.Duration) Option {
	return func(m *Manager) { m.idle = d }
}

// WithNavigator sets where forced-logout redirects go
func WithNavigator(n Navigator) Option {
	return func(m *Manager) { m.navigator = n }
}

// WithCacheSize sets the holder cache size
func WithCacheSize(size int) Option {
	return func(m *Manager) { m.cacheSize = size }
}

// WithExpiryHook registers a callback run after each inactivity logout
func WithExpiryHook(fn func(role domain.Role)) Option {
	return func(m *Manager) { m.onExpire = fn }
}

// NewManager creates a manager over store
func NewManager(store Store, opts ...Option) (*Manager, error) {
	m := &Manager{
		store:     store,
		clock:     RealClock(),
		idle:      IdleTimeout,
		cacheSize: DefaultCacheSize,
		monitors:  make(map[monitorKey]*Monitor),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.cacheSize <= 0 {
		m.cacheSize = DefaultCacheSize
	}

	holders, err := lru.New[string, *Holder](m.cacheSize)
	if err != nil {
		return nil, err
	}
	m.holders = holders
	return m, nil
}

// Holder returns the holder of clientID, restoring it from the store when
// it is not cached. Restored sessions get a monitor.
func (m *Manager) Holder(ctx context.Context, clientID string) *Holder {
	return m.holder(ctx, clientID, "")
}

// holder loads the holder of clientID; skip names a role that gets no
// monitor on restore
func (m *Manager) holder(ctx context.Context, clientID string, skip domain.Role) *Holder {
	m.mu.Lock()
	if h, ok := m.holders.Get(clientID); ok {
		m.mu.Unlock()
		return h
	}
	h := NewHolder(clientID, m.store)
	m.holders.Add(clientID, h)
	m.mu.Unlock()

	h.Restore(ctx)
	for _, role := range domain.Roles {
		if role == skip {
			continue
		}
		m.ensureMonitor(h, role)
	}
	return h
}

// Login stores identity in the client's holder and starts a fresh monitor
func (m *Manager) Login(ctx context.Context, clientID string, identity domain.Identity) error {
	h := m.Holder(ctx, clientID)
	if err := h.Login(ctx, identity); err != nil {
		return err
	}
	m.attachMonitor(clientID, identity.Role)

	logger.Log.WithFields(logrus.Fields{"client": clientID, "role": identity.Role, "id": identity.ID}).
		Info("✅ Session started")
	return nil
}

// Logout ends the role's session of the client; idempotent
func (m *Manager) Logout(ctx context.Context, clientID string, role domain.Role) error {
	h := m.holder(ctx, clientID, role)
	err := h.Logout(ctx, role)
	m.detachMonitor(clientID, role)
	return err
}

// Touch reports a user-interaction event for the role's session
func (m *Manager) Touch(clientID string, role domain.Role, kind EventKind) bool {
	m.mu.Lock()
	mon := m.monitors[monitorKey{clientID, role}]
	m.mu.Unlock()

	if mon == nil {
		return false
	}
	return mon.Touch(kind)
}

// Monitor returns the active monitor of the role's session, if any
func (m *Manager) Monitor(clientID string, role domain.Role) (*Monitor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mon, ok := m.monitors[monitorKey{clientID, role}]
	return mon, ok
}

// Close detaches every monitor
func (m *Manager) Close() {
	m.mu.Lock()
	monitors := m.monitors
	m.monitors = make(map[monitorKey]*Monitor)
	m.closed = true
	m.mu.Unlock()

	for _, mon := range monitors {
		mon.Detach()
	}
	logger.Log.Infof("🛑 Session manager closed (%d monitors detached)", len(monitors))
}

func (m *Manager) attachMonitor(clientID string, role domain.Role) {
	key := monitorKey{clientID, role}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	old := m.monitors[key]
	mon := m.newMonitor(key)
	m.monitors[key] = mon
	m.mu.Unlock()

	if old != nil {
		old.Detach()
	}
	mon.Attach()
}

// ensureMonitor attaches a monitor when h is logged in for role and none is
// active. The slot is read under m.mu; Logout clears it before detaching.
func (m *Manager) ensureMonitor(h *Holder, role domain.Role) {
	key := monitorKey{h.ClientID(), role}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	if _, ok := h.Current(role); !ok {
		m.mu.Unlock()
		return
	}
	if existing, ok := m.monitors[key]; ok && existing.State() == Active {
		m.mu.Unlock()
		return
	}
	mon := m.newMonitor(key)
	m.monitors[key] = mon
	m.mu.Unlock()

	mon.Attach()
}

func (m *Manager) detachMonitor(clientID string, role domain.Role) {
	key := monitorKey{clientID, role}

	m.mu.Lock()
	mon := m.monitors[key]
	delete(m.monitors, key)
	m.mu.Unlock()

	if mon != nil {
		mon.Detach()
	}
}

// newMonitor must be called with m.mu held
func (m *Manager) newMonitor(key monitorKey) *Monitor {
	var mon *Monitor
	mon = NewMonitor(m.clock, m.idle, func() { m.expire(key, mon) })
	return mon
}

func (m *Manager) expire(key monitorKey, mon *Monitor) {
	m.mu.Lock()
	if m.monitors[key] != mon {
		m.mu.Unlock()
		return
	}
	delete(m.monitors, key)
	m.mu.Unlock()

	ctx := context.Background()
	log := logger.Log.WithFields(logrus.Fields{"client": key.clientID, "role": key.role})

	h := m.holder(ctx, key.clientID, key.role)
	if err := h.Logout(ctx, key.role); err != nil {
		log.WithError(err).Error("❌ Failed to clear expired session")
	}
	log.Info("⏱️ Session expired after inactivity")

	if m.onExpire != nil {
		m.onExpire(key.role)
	}
	if m.navigator != nil {
		m.navigator.Navigate(key.clientID, key.role, LoginRoute(key.role), true)
	}
}
