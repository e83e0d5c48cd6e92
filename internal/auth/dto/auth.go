package dto

import "time"

// MeResponse describes the caller's session
type MeResponse struct {
	SignedIn  bool       `json:"signedIn"`
	UserID    string     `json:"userId,omitempty"`
	Email     string     `json:"email,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
