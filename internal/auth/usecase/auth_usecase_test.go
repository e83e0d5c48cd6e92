package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifeops-backend/internal/apperr"
	authdomain "lifeops-backend/internal/auth/domain"
	"lifeops-backend/internal/backing"
	"lifeops-backend/pkg/google"
)

type fakeVerifier struct {
	calls int
	infos map[string]*google.TokenInfo
}

func (f *fakeVerifier) TokenInfo(_ context.Context, token string) (*google.TokenInfo, error) {
	f.calls++
	info, ok := f.infos[token]
	if !ok {
		return nil, backing.ErrUnauthorized
	}
	return info, nil
}

type fakeUsers struct {
	touched []string
}

func (f *fakeUsers) Touch(_ context.Context, user *authdomain.User) error {
	f.touched = append(f.touched, user.ID)
	return nil
}

func (f *fakeUsers) FindByID(context.Context, string) (*authdomain.User, error) {
	return nil, nil
}

func newAuth(t *testing.T, ttl time.Duration) (*authUsecase, *fakeVerifier, *fakeUsers, *time.Time) {
	t.Helper()
	v := &fakeVerifier{infos: map[string]*google.TokenInfo{
		"tok-a": {UserID: "1001", Email: "a@example.com", ExpiresIn: 3600},
		"tok-b": {UserID: "1002", Email: "b@example.com", ExpiresIn: 60},
	}}
	users := &fakeUsers{}
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	u := NewAuthUsecase(v, users, ttl).(*authUsecase)
	u.now = func() time.Time { return now }
	return u, v, users, &now
}

func TestValidateTokenCachesSession(t *testing.T) {
	u, v, users, _ := newAuth(t, 10*time.Minute)
	ctx := context.Background()

	s, err := u.ValidateToken(ctx, "tok-a")
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if s.UserID != "1001" || s.Email != "a@example.com" {
		t.Fatalf("session=%+v", s)
	}
	if _, err := u.ValidateToken(ctx, "tok-a"); err != nil {
		t.Fatalf("cached ValidateToken: %v", err)
	}
	if v.calls != 1 {
		t.Fatalf("verifier calls=%d, want 1", v.calls)
	}
	if len(users.touched) != 1 || users.touched[0] != "1001" {
		t.Fatalf("touched=%v", users.touched)
	}
	want := time.Date(2026, 5, 1, 8, 10, 0, 0, time.UTC)
	if !s.ExpiresAt.Equal(want) {
		t.Fatalf("ExpiresAt=%v, want %v", s.ExpiresAt, want)
	}
}

func TestValidateTokenHonoursTokenExpiry(t *testing.T) {
	u, v, _, now := newAuth(t, 10*time.Minute)
	ctx := context.Background()

	s, _ := u.ValidateToken(ctx, "tok-b")
	if want := now.Add(time.Minute); !s.ExpiresAt.Equal(want) {
		t.Fatalf("ExpiresAt=%v, want %v", s.ExpiresAt, want)
	}
	*now = now.Add(2 * time.Minute)
	if _, err := u.ValidateToken(ctx, "tok-b"); err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if v.calls != 2 {
		t.Fatalf("verifier calls=%d, want 2", v.calls)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	u, _, _, _ := newAuth(t, time.Minute)
	if _, err := u.ValidateToken(context.Background(), ""); !errors.Is(err, apperr.ErrSignedOut) {
		t.Fatalf("empty token err=%v", err)
	}
	_, err := u.ValidateToken(context.Background(), "forged")
	if !IsSignedOut(err) {
		t.Fatalf("err=%v, want signed out", err)
	}
}

func TestActiveSessions(t *testing.T) {
	u, _, _, now := newAuth(t, time.Hour)
	ctx := context.Background()
	u.ValidateToken(ctx, "tok-a")
	u.ValidateToken(ctx, "tok-b")

	if got := len(u.ActiveSessions()); got != 2 {
		t.Fatalf("sessions=%d, want 2", got)
	}
	*now = now.Add(5 * time.Minute)
	active := u.ActiveSessions()
	if len(active) != 1 || active[0].UserID != "1001" {
		t.Fatalf("active=%+v", active)
	}
}
