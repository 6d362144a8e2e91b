// Package session owns the portal's authenticated state: one persisted
// record per browser session, and the two managers (staff, visitor)
// that run the login/restore/logout lifecycles over it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"room-booking-portal/internal/model"
)

// ErrNotFound is returned when no session record exists for an id.
var ErrNotFound = errors.New("session not found")

// Store defines the persistence operations for session records.
type Store interface {
	Create(ctx context.Context, ttl time.Duration) (*model.Session, error)
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, sess *model.Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed session store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Create(ctx context.Context, ttl time.Duration) (*model.Session, error) {
	sess := &model.Session{
		ID:        uuid.NewString(),
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := s.db.WithContext(ctx).Create(sess).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

func (s *gormStore) Get(ctx context.Context, id string) (*model.Session, error) {
	var sess model.Session
	err := s.db.WithContext(ctx).First(&sess, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *gormStore) Save(ctx context.Context, sess *model.Session) error {
	if err := s.db.WithContext(ctx).Save(sess).Error; err != nil {
		return fmt.Errorf("failed to save session %s: %w", sess.ID, err)
	}
	return nil
}

func (s *gormStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

func (s *gormStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&model.Session{}, "expires_at < ?", now)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// AddFlash queues a transient notification on the session record. The
// caller is responsible for persisting the record.
func AddFlash(sess *model.Session, level, message string) {
	flashes := decodeFlashes(sess.Flashes)
	flashes = append(flashes, model.Flash{Level: level, Message: message})
	sess.Flashes, _ = json.Marshal(flashes)
}

// ConsumeFlashes drains the queued notifications from the record.
func ConsumeFlashes(sess *model.Session) []model.Flash {
	flashes := decodeFlashes(sess.Flashes)
	sess.Flashes = nil
	return flashes
}

func decodeFlashes(raw []byte) []model.Flash {
	if len(raw) == 0 {
		return nil
	}
	var flashes []model.Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}
