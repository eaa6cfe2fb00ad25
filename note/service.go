package note

import (
	"context"
	"fmt"
)

// UseCase defines the business operations for book notes
type UseCase interface {
	ListByBook(ctx context.Context, bookID int64) ([]Note, error)
	Create(ctx context.Context, content string, pageNumber *int, bookID int64) (Note, error)
	UpdateContent(ctx context.Context, id int64, content string) (Note, error)
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

// ListByBook returns the notes of a book in ascending creation order.
// A book without notes yields an empty slice, not an error; callers that
// need the book itself to exist check that separately.
func (s *Service) ListByBook(ctx context.Context, bookID int64) ([]Note, error) {
	all, err := s.Repo.SelectByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("selecting notes: %w", err)
	}
	return all, nil
}

// Create inserts a note tied to bookID with a database-assigned creation
// timestamp. The book id is not verified, so a note can reference a book
// that no longer exists.
func (s *Service) Create(ctx context.Context, content string, pageNumber *int, bookID int64) (Note, error) {
	n := Note{
		Content:    content,
		PageNumber: pageNumber,
		BookID:     bookID,
	}
	saved, err := s.Repo.Insert(ctx, n)
	if err != nil {
		return Note{}, fmt.Errorf("inserting note: %w", err)
	}
	return saved, nil
}

// UpdateContent replaces the note text, leaving page number and timestamps alone.
func (s *Service) UpdateContent(ctx context.Context, id int64, content string) (Note, error) {
	n, err := s.Repo.UpdateContent(ctx, id, content)
	if err != nil {
		return Note{}, fmt.Errorf("updating note content: %w", err)
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}
