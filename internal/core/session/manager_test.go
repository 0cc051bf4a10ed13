package session_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/core/session"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type managerFixture struct {
	manager *session.Manager
	store   *session.MemoryStore
	clock   *testhelpers.FakeClock
	nav     *testhelpers.RecordingNavigator
	expired []domain.Role
}

func newManager(t *testing.T, opts ...session.Option) *managerFixture {
	t.Helper()
	f := &managerFixture{
		store: session.NewMemoryStore(),
		clock: testhelpers.NewFakeClock(epoch),
		nav:   &testhelpers.RecordingNavigator{},
	}
	opts = append([]session.Option{
		session.WithClock(f.clock),
		session.WithNavigator(f.nav),
		session.WithExpiryHook(func(role domain.Role) { f.expired = append(f.expired, role) }),
	}, opts...)

	m, err := session.NewManager(f.store, opts...)
	require.NoError(t, err)
	t.Cleanup(m.Close)
	f.manager = m
	return f
}

func TestManagerInactivityExpiry(t *testing.T) {
	ctx := context.Background()
	f := newManager(t)
	require.NoError(t, f.manager.Login(ctx, "c1", adminIdentity))

	f.clock.Advance(5*time.Minute + time.Second)

	_, ok := f.manager.Holder(ctx, "c1").Current(domain.RoleAdmin)
	assert.False(t, ok)
	_, err := f.store.Get(ctx, "c1", session.KeyAdmin)
	assert.ErrorIs(t, err, session.ErrNoValue)

	assert.Equal(t, []testhelpers.Navigation{
		{ClientID: "c1", Role: "admin", Location: "/login", Replace: true},
	}, f.nav.Calls())
	assert.Equal(t, []domain.Role{domain.RoleAdmin}, f.expired)
}

func TestManagerActivityKeepsSessionAlive(t *testing.T) {
	ctx := context.Background()
	f := newManager(t)
	require.NoError(t, f.manager.Login(ctx, "c1", employeeIdentity))

	f.clock.Advance(4*time.Minute + 59*time.Second)
	assert.True(t, f.manager.Touch("c1", domain.RoleEmployee, session.EventClick))
	f.clock.Advance(2 * time.Second)

	_, ok := f.manager.Holder(ctx, "c1").Current(domain.RoleEmployee)
	assert.True(t, ok)
	assert.Empty(t, f.nav.Calls())
}

func TestManagerMonitorsAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newManager(t)
	require.NoError(t, f.manager.Login(ctx, "c1", adminIdentity))
	require.NoError(t, f.manager.Login(ctx, "c1", employeeIdentity))

	f.clock.Advance(4 * time.Minute)
	f.manager.Touch("c1", domain.RoleEmployee, session.EventScroll)
	f.clock.Advance(90 * time.Second)

	h := f.manager.Holder(ctx, "c1")
	_, adminOK := h.Current(domain.RoleAdmin)
	_, employeeOK := h.Current(domain.RoleEmployee)
	assert.False(t, adminOK)
	assert.True(t, employeeOK)
	require.Len(t, f.nav.Calls(), 1)
	assert.Equal(t, "/login", f.nav.Calls()[0].Location)

	f.clock.Advance(4 * time.Minute)
	require.Len(t, f.nav.Calls(), 2)
	assert.Equal(t, "/employee/login", f.nav.Calls()[1].Location)
}

func TestManagerClientsAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newManager(t)
	require.NoError(t, f.manager.Login(ctx, "c1", adminIdentity))
	require.NoError(t, f.manager.Login(ctx, "c2", adminIdentity))

	require.NoError(t, f.manager.Logout(ctx, "c1", domain.RoleAdmin))

	_, ok := f.manager.Holder(ctx, "c2").Current(domain.RoleAdmin)
	assert.True(t, ok)
}

func TestManagerLogoutDetachesMonitor(t *testing.T) {
	ctx := context.Background()
	f := newManager(t)
	require.NoError(t, f.manager.Login(ctx, "c1", adminIdentity))
	require.NoError(t, f.manager.Logout(ctx, "c1", domain.RoleAdmin))
	require.NoError(t, f.manager.Logout(ctx, "c1", domain.RoleAdmin))

	_, ok := f.manager.Monitor("c1", domain.RoleAdmin)
	assert.False(t, ok)

	f.clock.Advance(time.Hour)
	assert.Empty(t, f.nav.Calls())
	assert.False(t, f.manager.Touch("c1", domain.RoleAdmin, session.EventClick))
}

func TestManagerReloginRestartsTimer(t *testing.T) {
	ctx := context.Background()
	f := newManager(t)
	require.NoError(t, f.manager.Login(ctx, "c1", adminIdentity))

	f.clock.Advance(4 * time.Minute)
	require.NoError(t, f.manager.Login(ctx, "c1", adminIdentity))
	f.clock.Advance(2 * time.Minute)

	assert.Empty(t, f.nav.Calls(), "the first timer must not fire after a new login")
	f.clock.Advance(4 * time.Minute)
	assert.Len(t, f.nav.Calls(), 1)
}

func TestManagerEvictedHolderIsRestored(t *testing.T) {
	ctx := context.Background()
	f := newManager(t, session.WithCacheSize(1))
	require.NoError(t, f.manager.Login(ctx, "c1", adminIdentity))

	f.manager.Holder(ctx, "c2")

	got, ok := f.manager.Holder(ctx, "c1").Current(domain.RoleAdmin)
	require.True(t, ok)
	assert.Equal(t, adminIdentity, got)

	f.clock.Advance(5*time.Minute + time.Second)
	_, ok = f.manager.Holder(ctx, "c1").Current(domain.RoleAdmin)
	assert.False(t, ok)
	assert.Len(t, f.nav.Calls(), 1)
}

func TestManagerRestoredSessionGetsMonitor(t *testing.T) {
	ctx := context.Background()
	f := newManager(t)
	raw := []byte(`{"id":47,"email":"e@x.com","name":"Ravi Kumar","role":"employee"}`)
	require.NoError(t, f.store.Put(ctx, "c9", session.KeyEmployee, raw))

	h := f.manager.Holder(ctx, "c9")
	require.True(t, h.Restored())

	mon, ok := f.manager.Monitor("c9", domain.RoleEmployee)
	require.True(t, ok)
	assert.Equal(t, session.Active, mon.State())
}

func TestManagerCloseDetachesEverything(t *testing.T) {
	ctx := context.Background()
	f := newManager(t)
	require.NoError(t, f.manager.Login(ctx, "c1", adminIdentity))
	require.NoError(t, f.manager.Login(ctx, "c2", employeeIdentity))

	f.manager.Close()
	f.clock.Advance(time.Hour)

	assert.Empty(t, f.nav.Calls())
	assert.Zero(t, f.clock.Pending())
}

func TestRedirectBoard(t *testing.T) {
	clock := testhelpers.NewFakeClock(epoch)
	board := session.NewRedirectBoard(clock)

	board.Navigate("c1", domain.RoleAdmin, "/login", true)

	r, ok := board.Take("c1", domain.RoleAdmin)
	require.True(t, ok)
	assert.Equal(t, session.PendingRedirect{Location: "/login", Replace: true, At: epoch}, r)

	_, ok = board.Take("c1", domain.RoleAdmin)
	assert.False(t, ok)

	board.Navigate("c1", domain.RoleEmployee, "/employee/login", true)
	board.Clear("c1", domain.RoleEmployee)
	_, ok = board.Take("c1", domain.RoleEmployee)
	assert.False(t, ok)
}

// pausingStore holds the first Get of key after the value has been read
// until release is closed.
type pausingStore struct {
	*session.MemoryStore
	key     string
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func newPausingStore(key string) *pausingStore {
	return &pausingStore{
		MemoryStore: session.NewMemoryStore(),
		key:         key,
		read:        make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (s *pausingStore) Get(ctx context.Context, clientID, key string) ([]byte, error) {
	raw, err := s.MemoryStore.Get(ctx, clientID, key)
	if key == s.key {
		s.once.Do(func() {
			close(s.read)
			<-s.release
		})
	}
	return raw, err
}

func TestManagerLogoutDuringRestoreStaysLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := newPausingStore(session.KeyEmployee)
	raw := []byte(`{"id":47,"email":"e@x.com","name":"Ravi Kumar","role":"employee"}`)
	require.NoError(t, store.Put(ctx, "c1", session.KeyEmployee, raw))

	m, err := session.NewManager(store, session.WithClock(testhelpers.NewFakeClock(epoch)))
	require.NoError(t, err)
	t.Cleanup(m.Close)

	restored := make(chan *session.Holder)
	go func() { restored <- m.Holder(ctx, "c1") }()

	<-store.read
	require.NoError(t, m.Logout(ctx, "c1", domain.RoleEmployee))
	close(store.release)
	h := <-restored

	require.True(t, h.Restored())
	_, ok := h.Current(domain.RoleEmployee)
	assert.False(t, ok)
	_, err = store.MemoryStore.Get(ctx, "c1", session.KeyEmployee)
	assert.ErrorIs(t, err, session.ErrNoValue)
	_, ok = m.Monitor("c1", domain.RoleEmployee)
	assert.False(t, ok)
	assert.Equal(t, session.Redirect, session.Authorize(h, domain.RoleEmployee).Decision)
}

func TestManagerLoginDuringRestoreWins(t *testing.T) {
	ctx := context.Background()
	store := newPausingStore(session.KeyEmployee)
	stale := []byte(`{"id":12,"email":"old@x.com","name":"Old","role":"employee"}`)
	require.NoError(t, store.Put(ctx, "c1", session.KeyEmployee, stale))

	m, err := session.NewManager(store, session.WithClock(testhelpers.NewFakeClock(epoch)))
	require.NoError(t, err)
	t.Cleanup(m.Close)

	restored := make(chan *session.Holder)
	go func() { restored <- m.Holder(ctx, "c1") }()

	<-store.read
	require.NoError(t, m.Login(ctx, "c1", employeeIdentity))
	close(store.release)
	h := <-restored

	got, ok := h.Current(domain.RoleEmployee)
	require.True(t, ok)
	assert.Equal(t, employeeIdentity, got)
}
