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
	"github.com/marcelsud/bookshelf/note"
)

type noteRequest struct {
	Content    string `json:"content"`
	PageNumber *int   `json:"page_number"`
}

type patchNoteRequest struct {
	Content string `json:"content"`
}

type noteResponse struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	PageNumber *int      `json:"page_number"`
	BookID     int64     `json:"book_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func toNoteResponse(n note.Note) noteResponse {
	return noteResponse{
		ID:         n.ID,
		Content:    n.Content,
		PageNumber: n.PageNumber,
		BookID:     n.BookID,
		CreatedAt:  n.CreatedAt,
	}
}

// getBookNotes requires the book to exist: a missing book is a 404, not an
// empty list.
func getBookNotes(bookService book.UseCase, noteService note.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if _, err := bookService.Get(r.Context(), id); err != nil {
			if errors.Is(err, book.ErrNotFound) {
				respondError(w, http.StatusNotFound, fmt.Sprintf("Book with id %d not found.", id))
				return
			}
			respondError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		notes, err := noteService.ListByBook(r.Context(), id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		result := make([]noteResponse, 0, len(notes))
		for _, n := range notes {
			result = append(result, toNoteResponse(n))
		}
		respondJSON(w, http.StatusOK, result)
	})
}

func postNote(noteService note.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bookID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		var nr noteRequest
		if err := json.NewDecoder(r.Body).Decode(&nr); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		saved, err := noteService.Create(r.Context(), nr.Content, nr.PageNumber, bookID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		respondJSON(w, http.StatusOK, toNoteResponse(saved))
	})
}

func patchNote(noteService note.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "note_id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		var nr patchNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&nr); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		n, err := noteService.UpdateContent(r.Context(), id, nr.Content)
		if errors.Is(err, note.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("No note found with id %d. No notes were modified.", id))
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		respondJSON(w, http.StatusOK, toNoteResponse(n))
	})
}

func deleteNote(noteService note.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "note_id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		err = noteService.Delete(r.Context(), id)
		if errors.Is(err, note.ErrNotFound) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("No note found with ID %d. No notes were deleted.", id))
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, internalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
