package note

import "context"

type Reader interface {
	SelectByBook(ctx context.Context, bookID int64) ([]Note, error)
}

type Writer interface {
	Insert(ctx context.Context, n Note) (Note, error)
	UpdateContent(ctx context.Context, id int64, content string) (Note, error)
	Delete(ctx context.Context, id int64) error
}

type Repository interface {
	Reader
	Writer
	Close(ctx context.Context) error
}
