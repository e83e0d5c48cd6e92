package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"lifeops-backend/internal/apikey/domain"
	"lifeops-backend/internal/apikey/repository"
	"lifeops-backend/internal/apperr"
	"lifeops-backend/internal/backing"
	"lifeops-backend/internal/clock"
)

const (
	minPinLength = 4
	maxPinLength = 12
)

type apiKeyUsecase struct {
	keys  repository.ApiKeyRepository
	pins  repository.PinRepository
	clock clock.Clock
}

// NewApiKeyUsecase creates a new instance of apiKeyUsecase
func NewApiKeyUsecase(keys repository.ApiKeyRepository, pins repository.PinRepository, clk clock.Clock) ApiKeyUsecase {
	return &apiKeyUsecase{keys: keys, pins: pins, clock: clk}
}

func (u *apiKeyUsecase) List(ctx context.Context, userID string, refresh bool) ([]domain.ApiKey, error) {
	keys, err := u.keys.List(ctx, userID, refresh)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ApiKey, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.Masked())
	}
	return out, nil
}

func (u *apiKeyUsecase) Create(ctx context.Context, userID string, input domain.ApiKey) (*domain.ApiKey, error) {
	input.ServiceName = strings.TrimSpace(input.ServiceName)
	input.APIKey = strings.TrimSpace(input.APIKey)
	if input.ServiceName == "" || input.APIKey == "" {
		return nil, apperr.Invalid("serviceName and apiKey are required")
	}

	now := u.clock.Timestamp()
	input.ID = u.clock.Millis()
	input.CreatedAt = now
	input.UpdatedAt = now
	if err := u.keys.Create(ctx, userID, input); err != nil {
		return nil, err
	}
	masked := input.Masked()
	return &masked, nil
}

func (u *apiKeyUsecase) Update(ctx context.Context, userID, id string, patch domain.Patch) (*domain.ApiKey, error) {
	// a masked value echoed back by a client is not a new secret
	if patch.APIKey != nil && (domain.IsMasked(*patch.APIKey) || strings.TrimSpace(*patch.APIKey) == "") {
		patch.APIKey = nil
	}
	if patch.ServiceName != nil && strings.TrimSpace(*patch.ServiceName) == "" {
		return nil, apperr.Invalid("serviceName cannot be empty")
	}

	current, err := u.keys.Find(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	updated := patch.Apply(*current)
	updated.UpdatedAt = u.clock.Timestamp()
	if err := u.keys.Update(ctx, userID, updated); err != nil {
		return nil, err
	}
	masked := updated.Masked()
	return &masked, nil
}

func (u *apiKeyUsecase) Delete(ctx context.Context, userID, id string) error {
	return u.keys.Delete(ctx, userID, id)
}

func (u *apiKeyUsecase) Reveal(ctx context.Context, userID, id, pin string) (string, error) {
	if backing.AccessToken(ctx) == "" {
		return "", apperr.ErrSignedOut
	}
	if err := u.checkPin(ctx, userID, pin); err != nil {
		return "", err
	}
	key, err := u.keys.Find(ctx, userID, id)
	if err != nil {
		return "", err
	}
	log.Printf("[Vault] revealed key %s for user %s", id, userID)
	return key.APIKey, nil
}

func (u *apiKeyUsecase) SetPin(ctx context.Context, userID, currentPin, pin string) error {
	if err := u.checkPin(ctx, userID, currentPin); err != nil {
		return err
	}
	if pin == "" {
		return u.pins.Delete(ctx, userID)
	}
	if len(pin) < minPinLength || len(pin) > maxPinLength {
		return apperr.Invalid("pin must be %d to %d characters", minPinLength, maxPinLength)
	}
	hash, err := repository.HashPin(pin)
	if err != nil {
		return fmt.Errorf("unable to hash pin: %w", err)
	}
	return u.pins.Set(ctx, userID, hash)
}

func (u *apiKeyUsecase) HasPin(ctx context.Context, userID string) (bool, error) {
	_, ok, err := u.pins.Get(ctx, userID)
	return ok, err
}

func (u *apiKeyUsecase) checkPin(ctx context.Context, userID, pin string) error {
	hash, ok, err := u.pins.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("unable to read vault pin: %w", err)
	}
	if !ok {
		return nil
	}
	if !repository.CheckPinHash(pin, hash) {
		return fmt.Errorf("%w: wrong pin", apperr.ErrForbidden)
	}
	return nil
}
