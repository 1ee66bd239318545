package history_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/stravafeed/internal/domain/history"
	"github.com/rpggio/stravafeed/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_RecordAndRecent(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.HistoryRepository{}
	entry := &history.Entry{Source: history.SourceWeb, Limit: 30, Outcome: history.OutcomeOK, Count: 3}

	repo.On("Log", ctx, entry).Return(nil)
	repo.On("List", ctx, history.ListOptions{Limit: history.DefaultListLimit}).Return([]history.Entry{*entry}, nil)

	svc := history.NewService(repo, nil)
	require.True(t, svc.Enabled())
	require.NoError(t, svc.Record(ctx, entry))
	require.NotEmpty(t, entry.ID)
	require.False(t, entry.CreatedAt.IsZero())

	entries, err := svc.Recent(ctx, history.ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	repo.AssertExpectations(t)
}

func TestHistoryService_KeepsGivenID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.HistoryRepository{}
	repo.On("Log", ctx, mock.MatchedBy(func(e *history.Entry) bool { return e.ID == "fetch-1" })).Return(nil)

	svc := history.NewService(repo, nil)
	require.NoError(t, svc.Record(ctx, &history.Entry{ID: "fetch-1", Outcome: history.OutcomeOK}))
	repo.AssertExpectations(t)
}

func TestHistoryService_Disabled(t *testing.T) {
	ctx := context.Background()

	svc := history.NewService(nil, nil)
	require.False(t, svc.Enabled())
	require.NoError(t, svc.Record(ctx, &history.Entry{Outcome: history.OutcomeOK}))

	_, err := svc.Recent(ctx, history.ListOptions{})
	require.ErrorIs(t, err, history.ErrDisabled)
}

func TestHistoryService_Errors(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.HistoryRepository{}
	repo.On("Log", ctx, mock.Anything).Return(errors.New("locked"))
	repo.On("List", ctx, mock.Anything).Return(nil, errors.New("locked"))

	svc := history.NewService(repo, nil)
	require.ErrorIs(t, svc.Record(ctx, nil), history.ErrInvalidInput)
	require.Error(t, svc.Record(ctx, &history.Entry{}))

	_, err := svc.Recent(ctx, history.ListOptions{Limit: 5})
	require.Error(t, err)
}
