package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lifeops-backend/internal/backing"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
)

// Service talks to Sheets, Drive and Docs on behalf of whichever user's
// access token travels in the request context. It implements
// backing.Spreadsheets, backing.Files and backing.Documents.
type Service struct {
	clientID     string
	clientSecret string
}

func NewService(clientID, clientSecret string) *Service {
	return &Service{
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// httpClient builds an authorized client from the context's access token
func (s *Service) httpClient(ctx context.Context) (*http.Client, error) {
	accessToken := backing.AccessToken(ctx)
	if accessToken == "" {
		return nil, backing.ErrUnauthorized
	}

	token := &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}
	config := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     googleoauth.Endpoint,
	}

	return oauth2.NewClient(ctx, config.TokenSource(ctx, token)), nil
}

// translate maps Google API status codes onto the backing sentinels
func translate(err error, action string) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized:
			return fmt.Errorf("unable to %s: %w: %v", action, backing.ErrUnauthorized, err)
		case http.StatusNotFound:
			return fmt.Errorf("unable to %s: %w: %v", action, backing.ErrNotFound, err)
		}
	}
	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) {
		return fmt.Errorf("unable to %s: %w: %v", action, backing.ErrUnauthorized, err)
	}
	return fmt.Errorf("unable to %s: %w", action, err)
}
