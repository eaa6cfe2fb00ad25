package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the catalog.
type Metrics struct {
	// Books is the total number of cataloged books
	Books int64 `json:"books"`

	// Notes is the total number of notes across all books
	Notes int64 `json:"notes"`

	// AverageRating is the mean of the numeric ratings (non-numeric
	// ratings are left out)
	AverageRating float64 `json:"average_rating"`

	// RecentlyUpdated is the number of books edited in the last 24 hours
	RecentlyUpdated int64 `json:"recently_updated"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the catalog.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetBookCount returns the total number of books
	GetBookCount(ctx context.Context) (int64, error)

	// GetNoteCount returns the total number of notes
	GetNoteCount(ctx context.Context) (int64, error)

	// GetAverageRating returns the mean rating of the catalog
	GetAverageRating(ctx context.Context) (float64, error)

	// GetRecentlyUpdated returns the number of books edited in the last 24 hours
	GetRecentlyUpdated(ctx context.Context) (int64, error)
}
