package note

import (
	"errors"
	"time"
)

/* Note represents a page-anchored annotation belonging to one book
 * Uses value semantics as it represents data, not behavior
 */
type Note struct {
	ID         int64
	Content    string
	PageNumber *int
	BookID     int64
	CreatedAt  time.Time
}

// ErrNotFound is returned when no note matches the given id.
var ErrNotFound = errors.New("note not found")
