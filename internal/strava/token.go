package strava

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
)

// AccessToken exchanges the refresh token for a fresh bearer token.
// A new token source is built per call so nothing is reused between calls.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	c.logger.InfoContext(ctx, "getting access token")

	if c.creds.RefreshToken == "" {
		c.logger.ErrorContext(ctx, "token request skipped", "reason", "refresh token is empty")
		return "", fmt.Errorf("%w: refresh token is empty", ErrMissingCredentials)
	}

	conf := &oauth2.Config{
		ClientID:     c.creds.ClientID,
		ClientSecret: c.creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	tok, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.creds.RefreshToken}).Token()
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil {
			c.logger.ErrorContext(ctx, "token request failed",
				"status", rerr.Response.StatusCode,
				"body", string(rerr.Body))
			return "", &StatusError{
				Err:        ErrTokenRequest,
				StatusCode: rerr.Response.StatusCode,
				Body:       string(rerr.Body),
			}
		}
		return "", fmt.Errorf("failed to request token: %w", err)
	}

	c.logger.InfoContext(ctx, "access token received", "expiry", tok.Expiry)
	return tok.AccessToken, nil
}
