package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcelsud/bookshelf/note"
	_ "github.com/lib/pq" // PostgreSQL driver
)

/* Note storage shares the pool opened by the book repository; both
 * repositories sit on the same *sql.DB.
 */

type Repository struct {
	DB *sql.DB
}

const selectColumns = "id, content, page_number, created_at, book_id"

// NewRepository wraps an existing connection pool.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB: db,
	}
}

// SelectByBook returns a book's notes in ascending creation order
func (r *Repository) SelectByBook(ctx context.Context, bookID int64) ([]note.Note, error) {
	query := "SELECT " + selectColumns + " FROM note WHERE book_id = $1 ORDER BY created_at ASC"

	rows, err := r.DB.QueryContext(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("selecting notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note

	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	return notes, nil
}

// Insert stores a new note with created_at set to NOW()
func (r *Repository) Insert(ctx context.Context, n note.Note) (note.Note, error) {
	query := `
		INSERT INTO note
		(content, page_number, created_at, book_id)
		VALUES
		($1, $2, NOW(), $3)
		RETURNING ` + selectColumns

	var pageNumber sql.NullInt64
	if n.PageNumber != nil {
		pageNumber = sql.NullInt64{Int64: int64(*n.PageNumber), Valid: true}
	}

	saved, err := scanNote(r.DB.QueryRowContext(ctx, query, n.Content, pageNumber, n.BookID))
	if err != nil {
		return note.Note{}, fmt.Errorf("inserting note: %w", err)
	}

	return saved, nil
}

// UpdateContent replaces the note text only
func (r *Repository) UpdateContent(ctx context.Context, id int64, content string) (note.Note, error) {
	query := `
		UPDATE note
		SET content = $1
		WHERE id = $2
		RETURNING ` + selectColumns

	n, err := scanNote(r.DB.QueryRowContext(ctx, query, content, id))
	if err == sql.ErrNoRows {
		return note.Note{}, note.ErrNotFound
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("updating note: %w", err)
	}

	return n, nil
}

// Delete removes a note by ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM note WHERE id = $1"

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rows == 0 {
		return note.ErrNotFound
	}

	return nil
}

// Close closes the underlying pool; call once per process, not per repository
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

// CreateTable creates the note table (useful for tests)
func (r *Repository) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS note (
			id SERIAL PRIMARY KEY,
			content TEXT NOT NULL DEFAULT '',
			page_number INTEGER,
			created_at TIMESTAMPTZ NOT NULL,
			book_id INTEGER NOT NULL
		)
	`

	_, err := r.DB.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	return nil
}

// DropTable removes the note table (useful for tests)
func (r *Repository) DropTable(ctx context.Context) error {
	query := "DROP TABLE IF EXISTS note CASCADE"

	_, err := r.DB.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("dropping table: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (note.Note, error) {
	var n note.Note
	var pageNumber sql.NullInt64
	err := row.Scan(
		&n.ID,
		&n.Content,
		&pageNumber,
		&n.CreatedAt,
		&n.BookID,
	)
	if pageNumber.Valid {
		p := int(pageNumber.Int64)
		n.PageNumber = &p
	}
	return n, err
}
