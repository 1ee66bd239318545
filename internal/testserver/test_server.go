package testserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rpggio/stravafeed/internal/app"
	"github.com/rpggio/stravafeed/internal/config"
	"github.com/rpggio/stravafeed/internal/strava"
	"github.com/rpggio/stravafeed/internal/transport"
	"github.com/stretchr/testify/require"
)

// StravaOptions configures the fake Strava responses. Zero statuses mean 200.
type StravaOptions struct {
	TokenStatus      int
	TokenBody        string
	ActivitiesStatus int
	ActivitiesBody   string
	RateLimit        string
	RateLimitUsage   string
}

// FakeStrava serves the token and activities endpoints and counts hits.
type FakeStrava struct {
	Server *httptest.Server

	opts           StravaOptions
	tokenHits      atomic.Int32
	activitiesHits atomic.Int32
	lastPerPage    atomic.Value
}

// NewFakeStrava starts a fake Strava API closed at test cleanup.
func NewFakeStrava(t *testing.T, opts StravaOptions) *FakeStrava {
	t.Helper()

	if opts.TokenStatus == 0 {
		opts.TokenStatus = http.StatusOK
	}
	if opts.TokenBody == "" && opts.TokenStatus == http.StatusOK {
		opts.TokenBody = `{"access_token":"test-access-token","token_type":"Bearer","expires_in":21600}`
	}
	if opts.ActivitiesStatus == 0 {
		opts.ActivitiesStatus = http.StatusOK
	}
	if opts.ActivitiesBody == "" && opts.ActivitiesStatus == http.StatusOK {
		opts.ActivitiesBody = "[]"
	}

	f := &FakeStrava{opts: opts}
	f.lastPerPage.Store("")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", f.handleToken)
	mux.HandleFunc("GET /api/v3/athlete/activities", f.handleActivities)
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)

	return f
}

func (f *FakeStrava) handleToken(w http.ResponseWriter, _ *http.Request) {
	f.tokenHits.Add(1)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.opts.TokenStatus)
	fmt.Fprint(w, f.opts.TokenBody)
}

func (f *FakeStrava) handleActivities(w http.ResponseWriter, r *http.Request) {
	f.activitiesHits.Add(1)
	f.lastPerPage.Store(r.URL.Query().Get("per_page"))
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		http.Error(w, `{"message":"Authorization Error"}`, http.StatusUnauthorized)
		return
	}
	if f.opts.RateLimit != "" {
		w.Header().Set(strava.HeaderRateLimit, f.opts.RateLimit)
	}
	if f.opts.RateLimitUsage != "" {
		w.Header().Set(strava.HeaderRateLimitUsage, f.opts.RateLimitUsage)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.opts.ActivitiesStatus)
	fmt.Fprint(w, f.opts.ActivitiesBody)
}

// TokenHits returns how many token requests were served.
func (f *FakeStrava) TokenHits() int { return int(f.tokenHits.Load()) }

// ActivitiesHits returns how many activities requests were served.
func (f *FakeStrava) ActivitiesHits() int { return int(f.activitiesHits.Load()) }

// LastPerPage returns the per_page value of the latest activities request.
func (f *FakeStrava) LastPerPage() string { return f.lastPerPage.Load().(string) }

// ClientOptions points a strava.Client at the fake.
func (f *FakeStrava) ClientOptions() []strava.Option {
	return []strava.Option{
		strava.WithTokenURL(f.Server.URL + "/oauth/token"),
		strava.WithAPIBaseURL(f.Server.URL + "/api/v3"),
	}
}

// TestServer runs the web presenter on top of the full stack and a fake Strava.
type TestServer struct {
	Server *httptest.Server
	Strava *FakeStrava
	App    *app.App
}

// New starts a web server backed by an in-memory history database.
func New(t *testing.T, opts StravaOptions) *TestServer {
	t.Helper()

	fake := NewFakeStrava(t, opts)

	cfg := config.Default()
	cfg.Strava = config.StravaConfig{ClientID: "12345", ClientSecret: "secret", RefreshToken: "refresh"}
	cfg.History.Path = fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	a, err := app.New(cfg, nil, fake.ClientOptions()...)
	require.NoError(t, err)

	server := httptest.NewServer(transport.NewServer(a.Feed, transport.Options{Limit: cfg.Web.Limit}))

	t.Cleanup(func() {
		server.Close()
		_ = a.Close()
	})

	return &TestServer{Server: server, Strava: fake, App: a}
}
