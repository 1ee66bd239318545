package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/stravafeed/internal/domain/feed"
	"github.com/rpggio/stravafeed/internal/domain/history"
	"github.com/rpggio/stravafeed/internal/strava"
)

// ListActivitiesInput is the list_activities argument set.
type ListActivitiesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of activities to return (1-200), default 10"`
}

// ListActivitiesOutput is the structured list_activities result.
type ListActivitiesOutput struct {
	FetchID    string            `json:"fetch_id"`
	Count      int               `json:"count"`
	Activities strava.Activities `json:"activities"`
	RateLimit  strava.RateLimit  `json:"rate_limit"`
}

// FetchHistoryInput is the fetch_history argument set.
type FetchHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries to return, default 20"`
}

// FetchHistoryOutput is the structured fetch_history result.
type FetchHistoryOutput struct {
	Entries []HistoryEntry `json:"entries"`
}

// HistoryEntry is one recorded fetch as shown to clients.
type HistoryEntry struct {
	ID             string `json:"id"`
	Source         string `json:"source"`
	Limit          int    `json:"limit"`
	Outcome        string `json:"outcome"`
	StatusCode     int    `json:"status_code,omitempty"`
	Count          int    `json:"count"`
	RateLimit      string `json:"rate_limit,omitempty"`
	RateLimitUsage string `json:"rate_limit_usage,omitempty"`
	Error          string `json:"error,omitempty"`
	DurationMs     int64  `json:"duration_ms"`
	CreatedAt      string `json:"created_at"`
}

func registerTools(server *sdkmcp.Server, cfg Config) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_activities",
		Description: "Download the athlete's most recent activities from Strava, newest first",
	}, listActivitiesHandler(cfg.Feed))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "fetch_history",
		Description: "List recent fetch attempts with outcome and rate-limit usage",
	}, fetchHistoryHandler(cfg.History))
}

func listActivitiesHandler(svc FeedService) sdkmcp.ToolHandlerFor[ListActivitiesInput, ListActivitiesOutput] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListActivitiesInput) (*sdkmcp.CallToolResult, ListActivitiesOutput, error) {
		res, err := svc.Fetch(ctx, feed.Request{Source: history.SourceMCP, Limit: in.Limit})
		if err != nil {
			return nil, ListActivitiesOutput{}, toolError(err)
		}

		out := ListActivitiesOutput{
			FetchID:    res.FetchID,
			Count:      len(res.Activities),
			Activities: res.Activities,
			RateLimit:  res.RateLimit,
		}
		if out.Activities == nil {
			out.Activities = strava.Activities{}
		}
		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: summarize(res.Activities)}},
		}, out, nil
	}
}

func fetchHistoryHandler(svc HistoryService) sdkmcp.ToolHandlerFor[FetchHistoryInput, FetchHistoryOutput] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, in FetchHistoryInput) (*sdkmcp.CallToolResult, FetchHistoryOutput, error) {
		if svc == nil {
			return nil, FetchHistoryOutput{}, toolError(history.ErrDisabled)
		}
		entries, err := svc.Recent(ctx, history.ListOptions{Limit: in.Limit})
		if err != nil {
			return nil, FetchHistoryOutput{}, toolError(err)
		}

		out := FetchHistoryOutput{Entries: make([]HistoryEntry, 0, len(entries))}
		for _, e := range entries {
			out.Entries = append(out.Entries, HistoryEntry{
				ID:             e.ID,
				Source:         string(e.Source),
				Limit:          e.Limit,
				Outcome:        string(e.Outcome),
				StatusCode:     e.StatusCode,
				Count:          e.Count,
				RateLimit:      e.RateLimit,
				RateLimitUsage: e.RateLimitUsage,
				Error:          e.Error,
				DurationMs:     e.Duration.Milliseconds(),
				CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		return nil, out, nil
	}
}

// toolError maps fetch failures to the messages the web page shows.
func toolError(err error) error {
	var statusErr *strava.StatusError
	switch {
	case errors.Is(err, strava.ErrMissingCredentials):
		return errors.New("Failed to get access token: refresh token not configured")
	case feed.IsTokenFailure(err) && errors.As(err, &statusErr):
		return fmt.Errorf("Failed to get access token: status %d", statusErr.StatusCode)
	case feed.IsTokenFailure(err):
		return errors.New("Failed to get access token")
	case feed.IsActivitiesFailure(err) && errors.As(err, &statusErr):
		return fmt.Errorf("Failed to fetch activities: status %d", statusErr.StatusCode)
	case errors.Is(err, history.ErrDisabled):
		return errors.New("fetch history is not enabled on this server")
	default:
		return err
	}
}

func summarize(activities strava.Activities) string {
	text := fmt.Sprintf("Downloaded %d activities", len(activities))
	for _, a := range activities {
		name, _ := a.Name()
		activityType, _ := a.Type()
		distance, _ := a.Distance()
		text += fmt.Sprintf("\n%s - %s - %sm", name, activityType, distance)
	}
	return text
}
