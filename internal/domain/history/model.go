package history

import "time"

// Outcome classifies how a fetch attempt ended.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeTokenFailed      Outcome = "token_failed"
	OutcomeActivitiesFailed Outcome = "activities_failed"
	OutcomeError            Outcome = "error"
)

// Source names the presenter that triggered a fetch.
type Source string

const (
	SourceConsole Source = "console"
	SourceWeb     Source = "web"
	SourceMCP     Source = "mcp"
)

// Entry records one fetch attempt. It never holds tokens or activity payloads.
type Entry struct {
	ID             string        `json:"id"`
	Source         Source        `json:"source"`
	Limit          int           `json:"limit"`
	Outcome        Outcome       `json:"outcome"`
	StatusCode     int           `json:"status_code,omitempty"`
	Count          int           `json:"count"`
	RateLimit      string        `json:"rate_limit,omitempty"`
	RateLimitUsage string        `json:"rate_limit_usage,omitempty"`
	Error          string        `json:"error,omitempty"`
	Duration       time.Duration `json:"duration_ns"`
	CreatedAt      time.Time     `json:"created_at"`
}
