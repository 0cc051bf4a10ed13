package repositories

import (
	"context"
	"errors"
	"time"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/core/session"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClientSessionStore persists session snapshots in the client_sessions table
type ClientSessionStore struct {
	db *gorm.DB
}

// NewClientSessionStore creates a session.Store backed by the database
func NewClientSessionStore(db *gorm.DB) *ClientSessionStore {
	return &ClientSessionStore{db: db}
}

var _ session.Store = (*ClientSessionStore)(nil)

// Get returns the snapshot stored under key, or session.ErrNoValue
func (s *ClientSessionStore) Get(ctx context.Context, clientID, key string) ([]byte, error) {
	var row models.ClientSession
	err := s.db.WithContext(ctx).
		Where("client_id = ? AND session_key = ?", clientID, key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, session.ErrNoValue
		}
		return nil, err
	}
	return []byte(row.Value), nil
}

// Put inserts or overwrites the snapshot stored under key
func (s *ClientSessionStore) Put(ctx context.Context, clientID, key string, value []byte) error {
	row := models.ClientSession{
		ClientID:  clientID,
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "session_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

// Delete removes the snapshot stored under key; a missing row is not an error
func (s *ClientSessionStore) Delete(ctx context.Context, clientID, key string) error {
	return s.db.WithContext(ctx).
		Where("client_id = ? AND session_key = ?", clientID, key).
		Delete(&models.ClientSession{}).Error
}

// Purge deletes snapshots not written since before (cleanup job)
func (s *ClientSessionStore) Purge(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("updated_at < ?", before).
		Delete(&models.ClientSession{})
	return result.RowsAffected, result.Error
}
