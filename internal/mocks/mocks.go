package mocks

import (
	"context"

	"github.com/rpggio/stravafeed/internal/domain/feed"
	"github.com/rpggio/stravafeed/internal/domain/history"
	"github.com/rpggio/stravafeed/internal/strava"
	"github.com/stretchr/testify/mock"
)

// TokenProvider is a mock for feed.TokenProvider.
type TokenProvider struct {
	mock.Mock
}

func (m *TokenProvider) AccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// ActivityFetcher is a mock for feed.ActivityFetcher.
type ActivityFetcher struct {
	mock.Mock
}

func (m *ActivityFetcher) ListActivities(ctx context.Context, accessToken string, limit int) (*strava.Page, error) {
	args := m.Called(ctx, accessToken, limit)
	if page, ok := args.Get(0).(*strava.Page); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

// Recorder is a mock for feed.Recorder.
type Recorder struct {
	mock.Mock
}

func (m *Recorder) Record(ctx context.Context, entry *history.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// HistoryRepository is a mock for history.Repository.
type HistoryRepository struct {
	mock.Mock
}

func (m *HistoryRepository) Log(ctx context.Context, entry *history.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *HistoryRepository) List(ctx context.Context, opts history.ListOptions) ([]history.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]history.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Fetcher is a mock for the presenters' view of feed.Service.
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) Fetch(ctx context.Context, req feed.Request) (*feed.Result, error) {
	args := m.Called(ctx, req)
	if res, ok := args.Get(0).(*feed.Result); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}
