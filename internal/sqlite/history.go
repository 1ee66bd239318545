package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rpggio/stravafeed/internal/domain/history"
)

// HistoryRepository implements history.Repository for SQLite
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Log inserts a new history entry
func (r *HistoryRepository) Log(ctx context.Context, entry *history.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO fetch_history (
			id, source, page_limit, outcome, status_code, activity_count,
			rate_limit, rate_limit_usage, error, duration_ns, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Source,
		entry.Limit,
		entry.Outcome,
		entry.StatusCode,
		entry.Count,
		entry.RateLimit,
		entry.RateLimitUsage,
		entry.Error,
		int64(entry.Duration),
		createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate id %q", history.ErrInvalidInput, entry.ID)
		}
		return fmt.Errorf("failed to log fetch: %w", err)
	}

	entry.CreatedAt = createdAt
	return nil
}

// List returns history entries matching the given filters, newest first
func (r *HistoryRepository) List(ctx context.Context, opts history.ListOptions) ([]history.Entry, error) {
	query := `
		SELECT
			id, source, page_limit, outcome, status_code, activity_count,
			rate_limit, rate_limit_usage, error, duration_ns, created_at
		FROM fetch_history
	`

	args := []interface{}{}
	conditions := []string{}

	if opts.Source != "" {
		conditions = append(conditions, "source = ?")
		args = append(args, opts.Source)
	}
	if opts.Outcome != "" {
		conditions = append(conditions, "outcome = ?")
		args = append(args, opts.Outcome)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY created_at DESC, seq DESC"

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list fetch history: %w", err)
	}
	defer rows.Close()

	entries := []history.Entry{}
	for rows.Next() {
		var entry history.Entry
		var durationNS int64
		if err := rows.Scan(
			&entry.ID,
			&entry.Source,
			&entry.Limit,
			&entry.Outcome,
			&entry.StatusCode,
			&entry.Count,
			&entry.RateLimit,
			&entry.RateLimitUsage,
			&entry.Error,
			&durationNS,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fetch history entry: %w", err)
		}
		entry.Duration = time.Duration(durationNS)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fetch history rows: %w", err)
	}

	return entries, nil
}
