package kv

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBackend persists entries in the kv_entries table
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend creates a new gorm-backed backend
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Scope(userID string) Store {
	return &gormStore{db: b.db, userID: userID}
}

type gormStore struct {
	db     *gorm.DB
	userID string
}

func (s *gormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).Where("user_id = ? AND key = ?", s.userID, key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set upserts the entry: INSERT ... ON CONFLICT (user_id, key) DO UPDATE
func (s *gormStore) Set(ctx context.Context, key, value string) error {
	now := time.Now()
	entry := &Entry{
		ID:        uuid.New().String(),
		UserID:    s.userID,
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
}

func (s *gormStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("user_id = ? AND key = ?", s.userID, key).Delete(&Entry{}).Error
}
