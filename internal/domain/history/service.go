package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultListLimit bounds Recent when no limit is given.
const DefaultListLimit = 20

// Service handles fetch history operations.
// A Service without a repository is disabled.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new history service. repo may be nil.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Enabled reports whether entries are persisted.
func (s *Service) Enabled() bool {
	return s != nil && s.repo != nil
}

// Record persists an entry, filling in ID and timestamp when missing.
func (s *Service) Record(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return ErrInvalidInput
	}
	if !s.Enabled() {
		return nil
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("recording fetch: %w", err)
	}
	s.logger.DebugContext(ctx, "fetch recorded", "id", entry.ID, "outcome", entry.Outcome)
	return nil
}

// Recent lists entries newest first.
func (s *Service) Recent(ctx context.Context, opts ListOptions) ([]Entry, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultListLimit
	}
	entries, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing fetch history: %w", err)
	}
	return entries, nil
}
