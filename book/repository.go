package book

import "context"

/* Interfaces abstract behavior, not things. Small interfaces composed
 * into Repository so storage implementations can be swapped per backend.
 */

type Reader interface {
	Select(ctx context.Context, id int64) (Book, error)
	SelectAll(ctx context.Context) ([]Book, error)
}

type Writer interface {
	Insert(ctx context.Context, b Book) (Book, error)
	UpdateRating(ctx context.Context, id int64, rating string) (Book, error)
	UpdateReview(ctx context.Context, id int64, review string) (Book, error)
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
