package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/marcelsud/bookshelf/book"
	_ "github.com/lib/pq" // PostgreSQL driver
)

type Repository struct {
	DB *sql.DB
}

const selectColumns = "id, title, author, isbn, publish_year, description, review, rating, cover_url, created_at, updated_at"

// NewRepository creates a PostgreSQL repository with the default pool (25, 5, 5 min)
func NewRepository(connectionString string) (*Repository, error) {
	return NewRepositoryWithPoolConfig(connectionString, 25, 5, 5)
}

// NewRepositoryWithPoolConfig creates a PostgreSQL repository with a custom pool
// maxOpenConns: maximum simultaneous connections (0 = unlimited)
// maxIdleConns: maximum idle connections kept in the pool
// maxLifeMinutes: maximum lifetime in minutes of a pooled connection
func NewRepositoryWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Repository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return &Repository{
		DB: db,
	}, nil
}

// Select finds a book by ID
func (r *Repository) Select(ctx context.Context, id int64) (book.Book, error) {
	query := "SELECT " + selectColumns + " FROM book WHERE id = $1"

	b, err := scanBook(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return book.Book{}, book.ErrNotFound
	}
	if err != nil {
		return book.Book{}, fmt.Errorf("selecting book: %w", err)
	}

	return b, nil
}

// SelectAll returns every book, most recently updated first
func (r *Repository) SelectAll(ctx context.Context) ([]book.Book, error) {
	query := "SELECT " + selectColumns + " FROM book ORDER BY updated_at DESC"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting books: %w", err)
	}
	defer rows.Close()

	var books []book.Book

	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}

	return books, nil
}

// Insert stores a new book and returns the row as stored, including the
// generated id and the timestamps, both set to NOW()
func (r *Repository) Insert(ctx context.Context, b book.Book) (book.Book, error) {
	query := `
		INSERT INTO book
		(title, author, isbn, publish_year, description, review, rating, cover_url, created_at, updated_at)
		VALUES
		($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + selectColumns

	saved, err := scanBook(r.DB.QueryRowContext(ctx, query,
		b.Title, b.Author, b.ISBN, b.PublishYear, b.Description, b.Review, b.Rating, b.CoverURL))
	if err != nil {
		return book.Book{}, fmt.Errorf("inserting book: %w", err)
	}

	return saved, nil
}

// UpdateRating sets a new rating and bumps updated_at
func (r *Repository) UpdateRating(ctx context.Context, id int64, rating string) (book.Book, error) {
	query := `
		UPDATE book
		SET rating = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + selectColumns

	b, err := scanBook(r.DB.QueryRowContext(ctx, query, rating, id))
	if err == sql.ErrNoRows {
		return book.Book{}, book.ErrNotFound
	}
	if err != nil {
		return book.Book{}, fmt.Errorf("updating rating: %w", err)
	}

	return b, nil
}

// UpdateReview sets a new review and bumps updated_at
func (r *Repository) UpdateReview(ctx context.Context, id int64, review string) (book.Book, error) {
	query := `
		UPDATE book
		SET review = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + selectColumns

	b, err := scanBook(r.DB.QueryRowContext(ctx, query, review, id))
	if err == sql.ErrNoRows {
		return book.Book{}, book.ErrNotFound
	}
	if err != nil {
		return book.Book{}, fmt.Errorf("updating review: %w", err)
	}

	return b, nil
}

// Delete removes a book by ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM book WHERE id = $1"

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting book: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rows == 0 {
		return book.ErrNotFound
	}

	return nil
}

// Close closes the database connection pool
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

// CreateTable creates the book table (useful for tests)
func (r *Repository) CreateTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS book (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT NOT NULL DEFAULT '',
			isbn TEXT NOT NULL DEFAULT '',
			publish_year INTEGER NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			review TEXT NOT NULL DEFAULT '',
			rating TEXT NOT NULL DEFAULT '',
			cover_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`

	_, err := r.DB.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	return nil
}

// DropTable removes the book table (useful for tests)
func (r *Repository) DropTable(ctx context.Context) error {
	query := "DROP TABLE IF EXISTS book CASCADE"

	_, err := r.DB.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("dropping table: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.ISBN,
		&b.PublishYear,
		&b.Description,
		&b.Review,
		&b.Rating,
		&b.CoverURL,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}
