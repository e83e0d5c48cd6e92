// Package kv is the local persistent key-value storage used to cache resolved
// spreadsheet, folder and document identifiers and small per-user settings.
// Reads take no lock against other writers: last writer wins.
package kv

import (
	"context"
	"time"
)

// Store is a string-keyed cache scoped to one user
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Backend hands out user-scoped stores
type Backend interface {
	Scope(userID string) Store
}

// Entry is one persisted key
type Entry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_kv_user_key;not null"`
	Key       string    `json:"key" gorm:"uniqueIndex:idx_kv_user_key;not null"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name stable across model renames
func (Entry) TableName() string {
	return "kv_entries"
}
