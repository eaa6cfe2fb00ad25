package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresCollector implements the Collector interface over the catalog database
type PostgresCollector struct {
	db *sql.DB
}

// NewPostgresCollector creates a collector on the given connection pool
func NewPostgresCollector(db *sql.DB) *PostgresCollector {
	return &PostgresCollector{
		db: db,
	}
}

// Collect gathers all metrics from the database
func (c *PostgresCollector) Collect(ctx context.Context) (Metrics, error) {
	books, err := c.GetBookCount(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting book count: %w", err)
	}

	notes, err := c.GetNoteCount(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting note count: %w", err)
	}

	avg, err := c.GetAverageRating(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting average rating: %w", err)
	}

	recent, err := c.GetRecentlyUpdated(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("getting recently updated count: %w", err)
	}

	return Metrics{
		Books:           books,
		Notes:           notes,
		AverageRating:   avg,
		RecentlyUpdated: recent,
		Timestamp:       time.Now(),
	}, nil
}

// GetBookCount returns the total number of books
func (c *PostgresCollector) GetBookCount(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM book").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting books: %w", err)
	}
	return count, nil
}

// GetNoteCount returns the total number of notes
func (c *PostgresCollector) GetNoteCount(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM note").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting notes: %w", err)
	}
	return count, nil
}

// GetAverageRating returns the mean of the ratings that parse as numbers.
// Ratings are stored as text, so anything non-numeric is skipped.
func (c *PostgresCollector) GetAverageRating(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(AVG(rating::numeric), 0)
		FROM book
		WHERE rating ~ '^[0-9]+(\.[0-9]+)?$'
	`

	var avg float64
	err := c.db.QueryRowContext(ctx, query).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("averaging ratings: %w", err)
	}
	return avg, nil
}

// GetRecentlyUpdated returns the number of books edited in the last 24 hours
func (c *PostgresCollector) GetRecentlyUpdated(ctx context.Context) (int64, error) {
	query := "SELECT COUNT(*) FROM book WHERE updated_at > NOW() - INTERVAL '24 hours'"

	var count int64
	err := c.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting recently updated books: %w", err)
	}
	return count, nil
}
