package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/bookshelf/googlebooks"
	"github.com/marcelsud/bookshelf/internal/web/bookapi"
)

const (
	genericError  = "An unexpected error occurred."
	searchMissErr = "Book not found. Please enter a valid title/ISBN"
)

// VolumeSearcher is the slice of the Google Books client the handlers use.
type VolumeSearcher interface {
	SearchByISBN(ctx context.Context, isbn string) (googlebooks.Volume, error)
	SearchByTitle(ctx context.Context, title string) (googlebooks.Volume, error)
}

// Handlers sets up the presentation routes
func Handlers(ctx context.Context, api *bookapi.Client, search VolumeSearcher) *chi.Mux {
	logger := httplog.NewLogger("bookshelf-web", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.FileServerFS(staticFS))

	r.Method(http.MethodGet, "/", home(api))
	r.Method(http.MethodGet, "/add", createForm())
	r.Method(http.MethodPost, "/add", createBook(api, search))
	r.Method(http.MethodGet, "/search", searchBooks(search))
	r.Method(http.MethodGet, "/books/{id}", bookDetail(api))
	r.Method(http.MethodPost, "/books/{id}", editBook(api))
	r.Method(http.MethodGet, "/books/delete/{id}", deleteBook(api))
	r.Method(http.MethodPost, "/books/{id}/notes/new", createNote(api))
	r.Method(http.MethodPost, "/books/{id}/notes/{note_id}/edit", editNote(api))
	r.Method(http.MethodGet, "/books/{id}/notes/{note_id}/delete", deleteNote(api))

	// Anything unmatched goes back to the shelf
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return r
}

func home(api *bookapi.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		books, err := api.ListBooks(r.Context())
		if err != nil {
			log.Printf("listing books: %v", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		view := homeView{Books: make([]bookCard, 0, len(books))}
		for _, b := range books {
			view.Books = append(view.Books, bookCard{
				ID:         b.ID,
				Title:      b.Title,
				Rating:     b.Rating,
				LastEdited: b.UpdatedAt.Local().Format(time.DateOnly),
				CoverURL:   b.CoverURL,
			})
		}
		render(w, http.StatusOK, "index.html", view)
	})
}

func createForm() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		render(w, http.StatusOK, "create.html", createView{
			Query:       q.Get("query"),
			Title:       q.Get("title"),
			ISBN:        q.Get("isbn"),
			Description: q.Get("description"),
			Error:       q.Get("error"),
			SearchError: q.Get("search_error"),
		})
	})
}

// createBook resolves the submitted ISBN against the volumes API to fill in
// the author, publish year and cover, then forwards everything to the data
// API. Creation is the one mutation whose failure the user actually sees.
func createBook(api *bookapi.Client, search VolumeSearcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render(w, http.StatusBadRequest, "create.html", createView{Error: genericError})
			return
		}
		form := createView{
			Title:       r.PostFormValue("title"),
			ISBN:        r.PostFormValue("isbn"),
			Description: r.PostFormValue("description"),
		}

		vol, err := search.SearchByISBN(r.Context(), form.ISBN)
		if err != nil {
			log.Printf("looking up isbn %q: %v", form.ISBN, err)
			form.Error = genericError
			render(w, http.StatusOK, "create.html", form)
			return
		}
		if len(vol.Authors) == 0 {
			form.Error = genericError
			render(w, http.StatusOK, "create.html", form)
			return
		}

		created, err := api.CreateBook(r.Context(), bookapi.NewBook{
			Title:       form.Title,
			Author:      vol.JoinedAuthors(),
			ISBN:        form.ISBN,
			PublishYear: vol.PublishYear(),
			Description: form.Description,
			Review:      r.PostFormValue("review"),
			Rating:      r.PostFormValue("rating"),
			CoverURL:    vol.ImageLinks.Thumbnail,
		})
		if err != nil {
			log.Printf("creating book: %v", err)
			form.Error = genericError
			var apiErr *bookapi.APIError
			if errors.As(err, &apiErr) {
				form.Error = apiErr.Message
			}
			render(w, http.StatusOK, "create.html", form)
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/books/%d", created.ID), http.StatusFound)
	})
}

// searchBooks prefills the create form from the first volumes API result. A
// purely numeric query is treated as an ISBN, anything else as a title.
func searchBooks(search VolumeSearcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "" {
			http.Redirect(w, r, "/add", http.StatusFound)
			return
		}

		var vol googlebooks.Volume
		var err error
		if _, numErr := strconv.ParseFloat(q, 64); numErr == nil {
			vol, err = search.SearchByISBN(r.Context(), q)
		} else {
			vol, err = search.SearchByTitle(r.Context(), q)
		}
		if err != nil {
			if !errors.Is(err, googlebooks.ErrNoResults) {
				log.Printf("searching %q: %v", q, err)
			}
			render(w, http.StatusOK, "create.html", createView{SearchError: searchMissErr})
			return
		}

		isbn := vol.ISBN()
		if isbn == "" {
			isbn = "Not found"
		}
		render(w, http.StatusOK, "create.html", createView{
			Query:       q,
			Title:       vol.Title,
			ISBN:        isbn,
			Description: vol.Description,
		})
	})
}

func bookDetail(api *bookapi.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		b, found, err := api.GetBook(r.Context(), id)
		if err != nil {
			log.Printf("fetching book %d: %v", id, err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		if !found {
			render(w, http.StatusNotFound, "notfound.html", nil)
			return
		}
		notes, err := api.ListNotes(r.Context(), id)
		if err != nil {
			log.Printf("fetching notes for book %d: %v", id, err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		render(w, http.StatusOK, "book.html", bookView{
			Book:    b,
			Created: b.CreatedAt.Local().Format("2006-01-02 15:04"),
			Updated: b.UpdatedAt.Local().Format("2006-01-02 15:04"),
			Notes:   notes,
		})
	})
}

/* The remaining mutations are fire-and-forget on purpose: failures are
 * logged server-side and the user is redirected as if the write succeeded.
 */

func editBook(api *bookapi.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		bookID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		if err := r.ParseForm(); err == nil {
			if err := api.UpdateBook(r.Context(), bookID, r.PostFormValue("rating"), r.PostFormValue("review")); err != nil {
				log.Printf("updating book %d: %v", bookID, err)
			}
		}
		http.Redirect(w, r, "/books/"+id, http.StatusFound)
	})
}

func deleteBook(api *bookapi.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err == nil {
			if err := api.DeleteBook(r.Context(), id); err != nil {
				log.Printf("deleting book %d: %v", id, err)
			}
		}
		http.Redirect(w, r, "/", http.StatusFound)
	})
}

func createNote(api *bookapi.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		bookID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		if err := r.ParseForm(); err == nil {
			var pageNumber *int
			if p, err := strconv.Atoi(r.PostFormValue("page_number")); err == nil {
				pageNumber = &p
			}
			if _, err := api.CreateNote(r.Context(), bookID, r.PostFormValue("content"), pageNumber); err != nil {
				log.Printf("creating note for book %d: %v", bookID, err)
			}
		}
		http.Redirect(w, r, "/books/"+id+"#notes", http.StatusFound)
	})
}

func editNote(api *bookapi.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		noteID, err := strconv.ParseInt(chi.URLParam(r, "note_id"), 10, 64)
		if err == nil {
			if err := r.ParseForm(); err == nil {
				if err := api.UpdateNote(r.Context(), noteID, r.PostFormValue("content")); err != nil {
					log.Printf("updating note %d: %v", noteID, err)
				}
			}
		}
		http.Redirect(w, r, "/books/"+id+"#notes", http.StatusFound)
	})
}

func deleteNote(api *bookapi.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		noteID, err := strconv.ParseInt(chi.URLParam(r, "note_id"), 10, 64)
		if err == nil {
			if err := api.DeleteNote(r.Context(), noteID); err != nil {
				log.Printf("deleting note %d: %v", noteID, err)
			}
		}
		http.Redirect(w, r, "/books/"+id+"#notes", http.StatusFound)
	})
}
