package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"lifeops-backend/internal/apperr"
	authdomain "lifeops-backend/internal/auth/domain"
	"lifeops-backend/internal/auth/repository"
	"lifeops-backend/pkg/google"
)

// TokenVerifier asks Google about an access token
type TokenVerifier interface {
	TokenInfo(ctx context.Context, accessToken string) (*google.TokenInfo, error)
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	verifier TokenVerifier
	userRepo repository.UserRepository
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]authdomain.Session
}

// NewAuthUsecase creates a new instance of authUsecase. Sessions are cached
// for ttl or until the token expires, whichever is sooner. userRepo may be nil.
func NewAuthUsecase(verifier TokenVerifier, userRepo repository.UserRepository, ttl time.Duration) AuthUsecase {
	return &authUsecase{
		verifier: verifier,
		userRepo: userRepo,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]authdomain.Session),
	}
}

func (u *authUsecase) ValidateToken(ctx context.Context, token string) (*authdomain.Session, error) {
	if token == "" {
		return nil, apperr.ErrSignedOut
	}
	now := u.now()

	u.mu.Lock()
	s, ok := u.sessions[token]
	u.mu.Unlock()
	if ok && s.Active(now) {
		return &s, nil
	}

	info, err := u.verifier.TokenInfo(ctx, token)
	if err != nil {
		u.forget(token)
		return nil, fmt.Errorf("%w: %v", apperr.ErrSignedOut, err)
	}
	if info.UserID == "" {
		return nil, fmt.Errorf("%w: token carries no user id", apperr.ErrSignedOut)
	}

	expiresAt := now.Add(time.Duration(info.ExpiresIn) * time.Second)
	if limit := now.Add(u.ttl); u.ttl > 0 && limit.Before(expiresAt) {
		expiresAt = limit
	}
	s = authdomain.Session{
		UserID:      info.UserID,
		Email:       info.Email,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}

	u.mu.Lock()
	u.sessions[token] = s
	u.prune(now)
	u.mu.Unlock()

	if u.userRepo != nil {
		if err := u.userRepo.Touch(ctx, &authdomain.User{ID: s.UserID, Email: s.Email}); err != nil {
			log.Printf("[Auth] Failed to record user %s: %v", s.UserID, err)
		}
	}
	log.Printf("[Auth] New session for %s", s.Email)
	return &s, nil
}

// ActiveSessions returns one session per user, the latest expiring one
func (u *authUsecase) ActiveSessions() []authdomain.Session {
	now := u.now()
	u.mu.Lock()
	defer u.mu.Unlock()

	byUser := make(map[string]authdomain.Session)
	for _, s := range u.sessions {
		if !s.Active(now) {
			continue
		}
		if cur, ok := byUser[s.UserID]; !ok || s.ExpiresAt.After(cur.ExpiresAt) {
			byUser[s.UserID] = s
		}
	}
	out := make([]authdomain.Session, 0, len(byUser))
	for _, s := range byUser {
		out = append(out, s)
	}
	return out
}

func (u *authUsecase) forget(token string) {
	u.mu.Lock()
	delete(u.sessions, token)
	u.mu.Unlock()
}

// prune drops expired sessions; callers hold mu
func (u *authUsecase) prune(now time.Time) {
	for token, s := range u.sessions {
		if !s.Active(now) {
			delete(u.sessions, token)
		}
	}
}

// IsSignedOut reports whether err came from a rejected or missing token
func IsSignedOut(err error) bool {
	return errors.Is(err, apperr.ErrSignedOut)
}
