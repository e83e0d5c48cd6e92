package repository

import (
	"context"

	"lifeops-backend/internal/kv"
)

const seedMarkerKey = "lifeops_daily_tasks_seeded"

type kvSeedMarker struct {
	backend kv.Backend
}

// NewSeedMarker keeps the marker in the user's key-value scope
func NewSeedMarker(backend kv.Backend) SeedMarker {
	return &kvSeedMarker{backend: backend}
}

func (m *kvSeedMarker) LastSeeded(ctx context.Context, userID string) (string, error) {
	date, _, err := m.backend.Scope(userID).Get(ctx, seedMarkerKey)
	return date, err
}

func (m *kvSeedMarker) MarkSeeded(ctx context.Context, userID, date string) error {
	return m.backend.Scope(userID).Set(ctx, seedMarkerKey, date)
}
