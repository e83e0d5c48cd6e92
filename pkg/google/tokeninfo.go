package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lifeops-backend/internal/backing"

	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// TokenInfo is what Google reports about an access token
type TokenInfo struct {
	UserID    string
	Email     string
	ExpiresIn int64
}

// TokenInfo validates an access token against the tokeninfo endpoint
func (s *Service) TokenInfo(ctx context.Context, accessToken string) (*TokenInfo, error) {
	srv, err := oauth2api.NewService(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, fmt.Errorf("unable to create OAuth2 service: %v", err)
	}
	info, err := srv.Tokeninfo().AccessToken(accessToken).Context(ctx).Do()
	if err != nil {
		// tokeninfo answers 400 for a bad or expired token
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusBadRequest {
			return nil, fmt.Errorf("unable to validate token: %w: %v", backing.ErrUnauthorized, err)
		}
		return nil, translate(err, "validate token")
	}
	return &TokenInfo{
		UserID:    info.UserId,
		Email:     info.Email,
		ExpiresIn: info.ExpiresIn,
	}, nil
}
