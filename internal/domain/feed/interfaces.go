package feed

import (
	"context"

	"github.com/rpggio/stravafeed/internal/domain/history"
	"github.com/rpggio/stravafeed/internal/strava"
)

// TokenProvider exchanges the refresh credential for a bearer token.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// ActivityFetcher fetches one page of activities with a bearer token.
type ActivityFetcher interface {
	ListActivities(ctx context.Context, accessToken string, limit int) (*strava.Page, error)
}

// Recorder stores fetch history entries.
type Recorder interface {
	Record(ctx context.Context, entry *history.Entry) error
}
