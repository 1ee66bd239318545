package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/stravafeed/internal/domain/feed"
	"github.com/rpggio/stravafeed/internal/domain/history"
)

// Version is reported to clients during initialization.
const Version = "0.1.0"

// FeedService runs an activities fetch.
type FeedService interface {
	Fetch(ctx context.Context, req feed.Request) (*feed.Result, error)
}

// HistoryService lists recorded fetches.
type HistoryService interface {
	Recent(ctx context.Context, opts history.ListOptions) ([]history.Entry, error)
}

// Config contains server configuration.
type Config struct {
	Feed    FeedService
	History HistoryService
	Logger  *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "stravafeed",
		Version: Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg)

	return server
}
