package request

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/clientcredentials"
)

// AuthConfig holds the optional OAuth2 client credentials settings.
// When enabled, a token is fetched once at startup and attached to every
// request as a default Authorization header.
type AuthConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// Enabled reports whether enough settings are present to fetch a token.
func (c AuthConfig) Enabled() bool {
	return c.TokenURL != "" && c.ClientID != "" && c.ClientSecret != ""
}

// BearerToken performs the OAuth2 client_credentials flow and returns a
// ready-to-use Authorization header value.
func BearerToken(ctx context.Context, c AuthConfig) (string, error) {
	config := clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.TokenURL,
		Scopes:       c.Scopes,
	}

	token, err := config.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("OAuth2 client_credentials flow failed: %w", err)
	}
	return "Bearer " + token.AccessToken, nil
}
