package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Holder owns the admin and employee slots of one client.
// The two slots are independent: writing one never touches the other.
type Holder struct {
	clientID string
	store    Store

	mu       sync.RWMutex
	slots    map[domain.Role]*domain.Identity
	written  map[domain.Role]bool
	restored bool
}

// NewHolder creates an empty, not yet restored holder
func NewHolder(clientID string, store Store) *Holder {
	return &Holder{
		clientID: clientID,
		store:    store,
		slots:    make(map[domain.Role]*domain.Identity, len(domain.Roles)),
		written:  make(map[domain.Role]bool, len(domain.Roles)),
	}
}

// ClientID returns the client the holder belongs to
func (h *Holder) ClientID() string {
	return h.clientID
}

// Restore loads both persisted slots. Absent, malformed or unreadable
// entries leave the slot logged out; malformed entries are removed.
// A slot written by Login or Logout while restoring is kept as written.
func (h *Holder) Restore(ctx context.Context) {
	for _, role := range domain.Roles {
		identity := h.load(ctx, role)

		h.mu.Lock()
		if identity != nil && !h.written[role] {
			h.slots[role] = identity
		}
		h.mu.Unlock()
	}

	h.mu.Lock()
	h.restored = true
	h.mu.Unlock()
}

func (h *Holder) load(ctx context.Context, role domain.Role) *domain.Identity {
	key := KeyFor(role)
	log := logger.Log.WithFields(logrus.Fields{"client": h.clientID, "key": key})

	raw, err := h.store.Get(ctx, h.clientID, key)
	if err != nil {
		if !errors.Is(err, ErrNoValue) {
			log.WithError(err).Warn("⚠️ Session restore failed, treating as logged out")
		}
		return nil
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil || identity.ID == 0 || identity.Role != role {
		log.Warn("⚠️ Malformed session entry removed")
		if err := h.store.Delete(ctx, h.clientID, key); err != nil {
			log.WithError(err).Warn("⚠️ Failed to remove malformed session entry")
		}
		return nil
	}
	return &identity
}

// Restored reports whether Restore has completed
func (h *Holder) Restored() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.restored
}

// Login overwrites the slot of identity.Role and persists it.
// The slot is left unchanged when persisting fails.
func (h *Holder) Login(ctx context.Context, identity domain.Identity) error {
	if !identity.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, identity.Role)
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := h.store.Put(ctx, h.clientID, KeyFor(identity.Role), raw); err != nil {
		return fmt.Errorf("%w: persist session: %v", domain.ErrStorageFailure, err)
	}

	h.mu.Lock()
	h.slots[identity.Role] = &identity
	h.written[identity.Role] = true
	h.mu.Unlock()
	return nil
}

// Logout clears the slot of role and its persisted copy.
// Logging out an empty slot is a no-op that still succeeds.
func (h *Holder) Logout(ctx context.Context, role domain.Role) error {
	h.mu.Lock()
	delete(h.slots, role)
	h.written[role] = true
	h.mu.Unlock()

	if err := h.store.Delete(ctx, h.clientID, KeyFor(role)); err != nil {
		return fmt.Errorf("%w: remove session: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

// Current returns a copy of the identity logged in for role
func (h *Holder) Current(role domain.Role) (domain.Identity, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	identity := h.slots[role]
	if identity == nil {
		return domain.Identity{}, false
	}
	return *identity, true
}
