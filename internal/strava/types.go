package strava

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Credentials holds the OAuth client identity and the long-lived refresh token.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Activity is one activity object exactly as the API returned it.
// Numbers are kept as json.Number so their literal text survives.
type Activity map[string]any

// Activities is one page of activities in API order.
type Activities []Activity

// RateLimit carries the raw rate-limit headers of a response.
type RateLimit struct {
	Limit string `json:"limit,omitempty"`
	Usage string `json:"usage,omitempty"`
}

// Page is the result of a single activities request.
type Page struct {
	Activities Activities
	RateLimit  RateLimit
}

// Field returns the value stored under key rendered as text.
func (a Activity) Field(key string) (string, bool) {
	v, ok := a[key]
	if !ok {
		return "", false
	}
	switch val := v.(type) {
	case nil:
		return "", true
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return fmt.Sprint(val), true
	}
}

func (a Activity) Name() (string, bool) {
	return a.Field("name")
}

func (a Activity) Type() (string, bool) {
	return a.Field("type")
}

func (a Activity) Distance() (string, bool) {
	return a.Field("distance")
}

func (a Activity) StartDateLocal() (string, bool) {
	return a.Field("start_date_local")
}

// MovingTime returns the moving time in seconds.
func (a Activity) MovingTime() (int64, bool) {
	s, ok := a.Field("moving_time")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int64(n), true
}
