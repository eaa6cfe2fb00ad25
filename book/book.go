package book

import (
	"errors"
	"time"
)

/* Book represents a cataloged book
 * Uses value semantics as it represents data, not behavior
 */
type Book struct {
	ID          int64
	Title       string
	Author      string
	ISBN        string
	PublishYear int
	Description string
	Review      string
	Rating      string
	CoverURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ErrNotFound is returned when no book matches the given id.
var ErrNotFound = errors.New("book not found")
