package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/bookshelf/book"
)

/*
* Represents a book at the web layer, hence the json tags
 */
type bookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	PublishYear int    `json:"publish_year"`
	Description string `json:"description"`
	Review      string `json:"review"`
	Rating      string `json:"rating"`
	CoverURL    string `json:"cover_url"`
}

type patchBookRequest struct {
	Rating string `json:"rating"`
	Review string `json:"review"`
}

type bookResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn"`
	PublishYear int       `json:"publish_year"`
	Description string    `json:"description"`
	Review      string    `json:"review"`
	Rating      string    `json:"rating"`
	CoverURL    string    `json:"cover_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toBookResponse(b book.Book) bookResponse {
	return bookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		PublishYear: b.PublishYear,
		Description: b.Description,
		Review:      b.Review,
		Rating:      b.Rating,
		CoverURL:    b.CoverURL,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func getBooks(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := bookService.List(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		result := make([]bookResponse, 0, len(all))
		for _, b := range all {
			result = append(result, toBookResponse(b))
		}
		respondJSON(w, http.StatusOK, result)
	})
}

func getBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		b, err := bookService.Get(r.Context(), id)
		if errors.Is(err, book.ErrNotFound) {
			// absence is not an error here: the body is a JSON null
			respondJSON(w, http.StatusOK, nil)
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		respondJSON(w, http.StatusOK, toBookResponse(b))
	})
}

func postBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var br bookRequest
		if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		saved, err := bookService.Create(r.Context(), book.Book{
			Title:       br.Title,
			Author:      br.Author,
			ISBN:        br.ISBN,
			PublishYear: br.PublishYear,
			Description: br.Description,
			Review:      br.Review,
			Rating:      br.Rating,
			CoverURL:    br.CoverURL,
		})
		if err != nil {
			respondError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		respondJSON(w, http.StatusOK, toBookResponse(saved))
	})
}

func patchBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		var br patchBookRequest
		if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		b, err := bookService.UpdateRatingAndReview(r.Context(), id, br.Rating, br.Review)
		if errors.Is(err, book.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("No book found with id %d. No books were modified.", id))
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		respondJSON(w, http.StatusOK, toBookResponse(b))
	})
}

func deleteBook(bookService book.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		err = bookService.Delete(r.Context(), id)
		if errors.Is(err, book.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("No book found with ID %d. No books were deleted.", id))
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
