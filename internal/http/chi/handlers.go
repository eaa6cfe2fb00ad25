package chi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/bookshelf/book"
	"github.com/marcelsud/bookshelf/note"
)

// Handlers sets up the data API routes
func Handlers(ctx context.Context, bookService book.UseCase, noteService note.UseCase) *chi.Mux {
	logger := httplog.NewLogger("bookshelf-api", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Method(http.MethodGet, "/books", getBooks(bookService))
	r.Method(http.MethodPost, "/books/new", postBook(bookService))
	r.Method(http.MethodGet, "/books/{id}", getBook(bookService))
	r.Method(http.MethodPatch, "/books/{id}", patchBook(bookService))
	r.Method(http.MethodDelete, "/books/{id}", deleteBook(bookService))
	r.Method(http.MethodGet, "/books/{id}/notes", getBookNotes(bookService, noteService))
	r.Method(http.MethodPost, "/books/{id}/notes", postNote(noteService))
	r.Method(http.MethodPatch, "/notes/{note_id}", patchNote(noteService))
	r.Method(http.MethodDelete, "/notes/{note_id}", deleteNote(noteService))

	return r
}
