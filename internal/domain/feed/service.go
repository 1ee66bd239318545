package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/stravafeed/internal/domain/history"
	"github.com/rpggio/stravafeed/internal/strava"
)

// DefaultLimit is the page size used when a request does not set one.
const DefaultLimit = 10

// Service runs the token refresh and activities fetch for every presenter.
type Service struct {
	tokens     TokenProvider
	activities ActivityFetcher
	history    Recorder
	logger     *slog.Logger
}

// NewService creates a new feed service. recorder may be nil.
func NewService(tokens TokenProvider, activities ActivityFetcher, recorder Recorder, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		tokens:     tokens,
		activities: activities,
		history:    recorder,
		logger:     logger,
	}
}

// Request describes a single fetch.
type Request struct {
	Source history.Source
	Limit  int
}

// Result holds the outcome of a fetch. Activities is empty, never nil, on failure.
type Result struct {
	FetchID    string
	Activities strava.Activities
	RateLimit  strava.RateLimit
	FetchedAt  time.Time
}

// Fetch obtains a fresh access token and downloads one page of activities.
// The activities endpoint is not called when the token request fails, and
// nothing is requested at all for an out-of-range limit.
func (s *Service) Fetch(ctx context.Context, req Request) (*Result, error) {
	if req.Limit == 0 {
		req.Limit = DefaultLimit
	}
	if req.Limit < 1 || req.Limit > strava.MaxPerPage {
		return &Result{Activities: strava.Activities{}}, fmt.Errorf("%w: %d", strava.ErrInvalidLimit, req.Limit)
	}

	started := time.Now()
	result := &Result{
		FetchID:    uuid.NewString(),
		Activities: strava.Activities{},
	}
	logger := s.logger.With("fetch_id", result.FetchID, "source", req.Source)

	entry := &history.Entry{
		ID:     result.FetchID,
		Source: req.Source,
		Limit:  req.Limit,
	}

	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to get access token", "error", err)
		entry.Outcome = history.OutcomeError
		if IsTokenFailure(err) {
			entry.Outcome = history.OutcomeTokenFailed
		}
		s.record(ctx, logger, entry, err, started)
		return result, fmt.Errorf("getting access token: %w", err)
	}

	page, err := s.activities.ListActivities(ctx, token, req.Limit)
	if page != nil {
		result.RateLimit = page.RateLimit
		entry.RateLimit = page.RateLimit.Limit
		entry.RateLimitUsage = page.RateLimit.Usage
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch activities", "error", err)
		entry.Outcome = history.OutcomeError
		if IsActivitiesFailure(err) {
			entry.Outcome = history.OutcomeActivitiesFailed
		}
		s.record(ctx, logger, entry, err, started)
		return result, fmt.Errorf("fetching activities: %w", err)
	}

	if page.Activities != nil {
		result.Activities = page.Activities
	}
	result.FetchedAt = time.Now().UTC()

	entry.Outcome = history.OutcomeOK
	entry.Count = len(result.Activities)
	s.record(ctx, logger, entry, nil, started)

	logger.InfoContext(ctx, "fetch complete", "count", entry.Count, "duration", time.Since(started))
	return result, nil
}

func (s *Service) record(ctx context.Context, logger *slog.Logger, entry *history.Entry, err error, started time.Time) {
	if s.history == nil {
		return
	}
	if err != nil {
		entry.Error = err.Error()
		entry.StatusCode = statusCode(err)
	}
	entry.Duration = time.Since(started)
	if recErr := s.history.Record(ctx, entry); recErr != nil {
		logger.WarnContext(ctx, "failed to record fetch", "error", recErr)
	}
}
