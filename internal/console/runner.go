package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rpggio/stravafeed/internal/domain/feed"
	"github.com/rpggio/stravafeed/internal/domain/history"
)

// Fetcher runs one activities fetch.
type Fetcher interface {
	Fetch(ctx context.Context, req feed.Request) (*feed.Result, error)
}

// Runner performs one fetch-and-print cycle.
type Runner struct {
	fetcher Fetcher
	printer Printer
	out     io.Writer
	logger  *slog.Logger
}

// NewRunner creates a Runner printing to out.
func NewRunner(fetcher Fetcher, out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{fetcher: fetcher, out: out, logger: logger}
}

// Run fetches up to limit activities and prints them.
// Recognized request failures are reported through the logger only and yield nil.
func (r *Runner) Run(ctx context.Context, limit int) error {
	res, err := r.fetcher.Fetch(ctx, feed.Request{Source: history.SourceConsole, Limit: limit})
	switch {
	case err == nil:
	case feed.IsTokenFailure(err):
		r.logger.WarnContext(ctx, "no access token, nothing to print")
		return nil
	case feed.IsActivitiesFailure(err):
		// Same as an empty page: the header is still printed.
	default:
		return fmt.Errorf("fetch: %w", err)
	}

	if err := r.printer.Print(r.out, res.Activities); err != nil {
		return fmt.Errorf("print activities: %w", err)
	}
	return nil
}
