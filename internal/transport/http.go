package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/stravafeed/internal/domain/feed"
	"github.com/rpggio/stravafeed/internal/domain/history"
)

// DefaultLimit is the number of activities shown on the page.
const DefaultLimit = 30

// Fetcher runs the activities feed.
type Fetcher interface {
	Fetch(ctx context.Context, req feed.Request) (*feed.Result, error)
}

// Options configures the web server.
type Options struct {
	Limit  int
	Logger *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	fetcher Fetcher
	limit   int
	logger  *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(fetcher Fetcher, opts Options) *chi.Mux {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	srv := &Server{fetcher: fetcher, limit: opts.Limit, logger: opts.Logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(opts.Logger))
	r.Use(Recoverer(opts.Logger))

	r.Get("/", srv.handleActivities)
	r.Get("/health", srv.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := s.fetcher.Fetch(ctx, feed.Request{Source: history.SourceWeb, Limit: s.limit})

	var page pageView
	switch {
	case err == nil:
		page = newPageView(res)
	case feed.IsTokenFailure(err):
		s.logger.WarnContext(ctx, "token request failed", "error", err)
		page = pageView{Error: msgTokenFailed}
	case feed.IsActivitiesFailure(err):
		s.logger.WarnContext(ctx, "activities request failed", "error", err)
		page = pageView{Error: msgActivitiesFailed, RateLimit: rateLimitOf(res)}
	default:
		s.logger.ErrorContext(ctx, "fetch failed", "error", err)
		writeInternalError(w)
		return
	}

	render(w, s.logger, http.StatusOK, page)
}
