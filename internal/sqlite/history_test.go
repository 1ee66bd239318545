package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/stravafeed/internal/domain/history"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewHistoryRepository(db)

	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	entry1 := &history.Entry{
		ID:        "h1",
		Source:    history.SourceConsole,
		Limit:     10,
		Outcome:   history.OutcomeOK,
		Count:     10,
		RateLimit: "200,2000",
		Duration:  250 * time.Millisecond,
		CreatedAt: base,
	}
	entry2 := &history.Entry{
		ID:         "h2",
		Source:     history.SourceWeb,
		Limit:      30,
		Outcome:    history.OutcomeTokenFailed,
		StatusCode: 401,
		Error:      "token request failed",
		CreatedAt:  base.Add(time.Minute),
	}

	require.NoError(t, repo.Log(ctx, entry1))
	require.NoError(t, repo.Log(ctx, entry2))

	entries, err := repo.List(ctx, history.ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "h2", entries[0].ID)
	require.Equal(t, "h1", entries[1].ID)

	require.Equal(t, history.OutcomeTokenFailed, entries[0].Outcome)
	require.Equal(t, 401, entries[0].StatusCode)
	require.Equal(t, 250*time.Millisecond, entries[1].Duration)
	require.Equal(t, "200,2000", entries[1].RateLimit)
	require.True(t, base.Equal(entries[1].CreatedAt))
}

func TestHistoryRepository_Filters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewHistoryRepository(db)

	for i, src := range []history.Source{history.SourceWeb, history.SourceConsole, history.SourceWeb} {
		require.NoError(t, repo.Log(ctx, &history.Entry{
			ID:        string(rune('a' + i)),
			Source:    src,
			Limit:     10,
			Outcome:   history.OutcomeOK,
			CreatedAt: time.Now().UTC(),
		}))
	}

	entries, err := repo.List(ctx, history.ListOptions{Source: history.SourceWeb})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = repo.List(ctx, history.ListOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entries, err = repo.List(ctx, history.ListOptions{Outcome: history.OutcomeError})
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestHistoryRepository_DuplicateID(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewHistoryRepository(db)

	entry := &history.Entry{ID: "dup", Source: history.SourceMCP, Limit: 10, Outcome: history.OutcomeOK}
	require.NoError(t, repo.Log(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())

	err := repo.Log(ctx, &history.Entry{ID: "dup", Source: history.SourceMCP, Limit: 10, Outcome: history.OutcomeOK})
	require.ErrorIs(t, err, history.ErrInvalidInput)
}
