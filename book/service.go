package book

import (
	"context"
	"fmt"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// UseCase defines the business operations for the book catalog
type UseCase interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id int64) (Book, error)
	Create(ctx context.Context, b Book) (Book, error)
	UpdateRatingAndReview(ctx context.Context, id int64, rating, review string) (Book, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{
		Repo: repo,
	}
}

// List returns every book ordered by last update, most recent first.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	all, err := s.Repo.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	return all, nil
}

// Get returns a single book. Absence surfaces as ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (Book, error) {
	b, err := s.Repo.Select(ctx, id)
	if err != nil {
		return Book{}, fmt.Errorf("selecting book: %w", err)
	}
	return b, nil
}

// Create inserts a new book. The rating ceiling is applied before storage
// and the database assigns the id and both timestamps, equal at creation.
func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	b.Rating = ClampRating(b.Rating)
	saved, err := s.Repo.Insert(ctx, b)
	if err != nil {
		return Book{}, fmt.Errorf("inserting book: %w", err)
	}
	return saved, nil
}

// UpdateRatingAndReview performs two sequential writes: rating first, then
// review, each bumping updated_at. If the rating update matches no row the
// review update is skipped and ErrNotFound is returned. The two statements
// are not wrapped in a transaction, so a concurrent reader can observe the
// new rating with the old review. The returned row is the one produced by
// the rating update.
func (s *Service) UpdateRatingAndReview(ctx context.Context, id int64, rating, review string) (Book, error) {
	b, err := s.Repo.UpdateRating(ctx, id, ClampRating(rating))
	if err != nil {
		return Book{}, fmt.Errorf("updating rating: %w", err)
	}
	if _, err := s.Repo.UpdateReview(ctx, id, review); err != nil {
		return Book{}, fmt.Errorf("updating review: %w", err)
	}
	return b, nil
}

// Delete removes a book. Notes referencing it are left in place.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}
	return nil
}
