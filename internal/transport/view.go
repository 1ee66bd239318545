package transport

import (
	"fmt"
	"time"

	"github.com/rpggio/stravafeed/internal/domain/feed"
	"github.com/rpggio/stravafeed/internal/strava"
	"github.com/shopspring/decimal"
)

const (
	msgTokenFailed      = "Failed to get access token"
	msgActivitiesFailed = "Failed to fetch activities"
)

var metersPerKm = decimal.NewFromInt(1000)

type pageView struct {
	Error      string
	Activities []activityRow
	RateLimit  strava.RateLimit
	FetchedAt  string
}

type activityRow struct {
	Name       string
	Type       string
	Distance   string
	MovingTime string
	Date       string
}

func newPageView(res *feed.Result) pageView {
	rows := make([]activityRow, 0, len(res.Activities))
	for _, a := range res.Activities {
		rows = append(rows, newActivityRow(a))
	}
	view := pageView{Activities: rows, RateLimit: res.RateLimit}
	if !res.FetchedAt.IsZero() {
		view.FetchedAt = res.FetchedAt.Format(time.RFC1123)
	}
	return view
}

func rateLimitOf(res *feed.Result) strava.RateLimit {
	if res == nil {
		return strava.RateLimit{}
	}
	return res.RateLimit
}

func newActivityRow(a strava.Activity) activityRow {
	row := activityRow{}
	row.Name, _ = a.Name()
	row.Type, _ = a.Type()
	if d, ok := a.Distance(); ok {
		row.Distance = formatKm(d)
	}
	if secs, ok := a.MovingTime(); ok {
		row.MovingTime = formatDuration(secs)
	}
	if date, ok := a.StartDateLocal(); ok {
		row.Date = formatDate(date)
	}
	return row
}

// formatKm renders a distance in meters as kilometers with two decimals.
// Values that are not numbers are shown as given.
func formatKm(meters string) string {
	d, err := decimal.NewFromString(meters)
	if err != nil {
		return meters
	}
	return d.Div(metersPerKm).StringFixed(2) + " km"
}

func formatDuration(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}

func formatDate(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format("2006-01-02 15:04")
}
