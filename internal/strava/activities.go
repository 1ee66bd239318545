package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// ListActivities fetches the first page of the athlete's activities.
// On a non-200 status the returned page is empty but still carries the rate limit.
func (c *Client) ListActivities(ctx context.Context, accessToken string, limit int) (*Page, error) {
	if limit < 1 || limit > MaxPerPage {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	c.logger.InfoContext(ctx, "fetching activities", "limit", limit)

	query := url.Values{}
	query.Set("per_page", strconv.Itoa(limit))
	query.Set("page", "1")
	endpoint := c.apiBaseURL + "/athlete/activities?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Add("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	page := &Page{
		Activities: Activities{},
		RateLimit: RateLimit{
			Limit: resp.Header.Get(HeaderRateLimit),
			Usage: resp.Header.Get(HeaderRateLimitUsage),
		},
	}
	c.logger.InfoContext(ctx, "rate limit",
		"limit", page.RateLimit.Limit,
		"usage", page.RateLimit.Usage)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.ErrorContext(ctx, "activities request failed",
			"status", resp.StatusCode,
			"body", string(body))
		return page, &StatusError{
			Err:        ErrActivitiesRequest,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var activities Activities
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	if activities != nil {
		page.Activities = activities
	}

	c.logger.InfoContext(ctx, "activities downloaded", "count", len(page.Activities))
	return page, nil
}
