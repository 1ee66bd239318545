package console

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rpggio/stravafeed/internal/domain/feed"
	"github.com/rpggio/stravafeed/internal/domain/history"
	"github.com/rpggio/stravafeed/internal/mocks"
	"github.com/rpggio/stravafeed/internal/strava"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	ctx := context.Background()
	fetcher := &mocks.Fetcher{}
	fetcher.On("Fetch", ctx, feed.Request{Source: history.SourceConsole, Limit: 10}).Return(&feed.Result{
		Activities: strava.Activities{{"name": "Hike", "type": "Hike", "distance": "8000"}},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, NewRunner(fetcher, &buf, nil).Run(ctx, 10))
	require.Contains(t, buf.String(), "Downloaded 1 activities")
	require.Contains(t, buf.String(), "Hike - Hike - 8000m")
	fetcher.AssertExpectations(t)
}

func TestRunner_TokenFailurePrintsNothing(t *testing.T) {
	ctx := context.Background()
	fetcher := &mocks.Fetcher{}
	fetcher.On("Fetch", ctx, feed.Request{Source: history.SourceConsole, Limit: 10}).Return(
		&feed.Result{Activities: strava.Activities{}},
		&strava.StatusError{Err: strava.ErrTokenRequest, StatusCode: 401},
	)

	var buf bytes.Buffer
	require.NoError(t, NewRunner(fetcher, &buf, nil).Run(ctx, 10))
	require.Empty(t, buf.String())
}

func TestRunner_ActivitiesFailurePrintsEmptyHeader(t *testing.T) {
	ctx := context.Background()
	fetcher := &mocks.Fetcher{}
	fetcher.On("Fetch", ctx, feed.Request{Source: history.SourceConsole, Limit: 10}).Return(
		&feed.Result{Activities: strava.Activities{}},
		&strava.StatusError{Err: strava.ErrActivitiesRequest, StatusCode: 500},
	)

	var buf bytes.Buffer
	require.NoError(t, NewRunner(fetcher, &buf, nil).Run(ctx, 10))
	require.Equal(t, "\nDownloaded 0 activities\n", buf.String())
}

func TestRunner_UnexpectedFault(t *testing.T) {
	ctx := context.Background()
	fetcher := &mocks.Fetcher{}
	fetcher.On("Fetch", ctx, feed.Request{Source: history.SourceConsole, Limit: 10}).Return(
		&feed.Result{Activities: strava.Activities{}},
		errors.New("dial tcp: connection refused"),
	)

	var buf bytes.Buffer
	err := NewRunner(fetcher, &buf, nil).Run(ctx, 10)
	require.ErrorContains(t, err, "connection refused")
	require.Empty(t, buf.String())
}
