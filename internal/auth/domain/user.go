package domain

import "time"

// User is a Google account that has called the API at least once
type User struct {
	ID         string    `json:"id" gorm:"primaryKey"` // Google account id
	Email      string    `json:"email" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Session is a validated bearer token
type Session struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	AccessToken string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Active reports whether the session is still usable at now
func (s Session) Active(now time.Time) bool {
	return s.AccessToken != "" && now.Before(s.ExpiresAt)
}
