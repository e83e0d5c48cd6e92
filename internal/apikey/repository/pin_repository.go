package repository

import (
	"context"

	"lifeops-backend/internal/kv"

	"golang.org/x/crypto/bcrypt"
)

const PinKey = "lifeops_vault_pin_hash"

type kvPinRepository struct {
	backend kv.Backend
}

// NewPinRepository stores the PIN hash in the user's key-value scope
func NewPinRepository(backend kv.Backend) PinRepository {
	return &kvPinRepository{backend: backend}
}

func (r *kvPinRepository) Get(ctx context.Context, userID string) (string, bool, error) {
	return r.backend.Scope(userID).Get(ctx, PinKey)
}

func (r *kvPinRepository) Set(ctx context.Context, userID, hash string) error {
	return r.backend.Scope(userID).Set(ctx, PinKey, hash)
}

func (r *kvPinRepository) Delete(ctx context.Context, userID string) error {
	return r.backend.Scope(userID).Delete(ctx, PinKey)
}

// HashPin hashes a vault PIN using bcrypt
func HashPin(pin string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPinHash compares a PIN with a hash
func CheckPinHash(pin, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	return err == nil
}
