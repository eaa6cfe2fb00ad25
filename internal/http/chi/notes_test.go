package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/marcelsud/bookshelf/book"
	bookmocks "github.com/marcelsud/bookshelf/book/mocks"
	"github.com/marcelsud/bookshelf/note"
	notemocks "github.com/marcelsud/bookshelf/note/mocks"
)

func TestGetBookNotes(t *testing.T) {
	ctx := context.Background()
	s := bookmocks.NewUseCase(t)
	n := notemocks.NewUseCase(t)
	page := 12
	s.On("Get", mock.AnythingOfType("*context.valueCtx"), int64(1)).Return(book.Book{ID: 1, Title: "Title 1"}, nil)
	n.On("ListByBook", mock.AnythingOfType("*context.valueCtx"), int64(1)).Return([]note.Note{
		{ID: 1, Content: "first note", PageNumber: &page, BookID: 1},
		{ID: 2, Content: "second note", BookID: 1},
	}, nil)
	h := Handlers(ctx, s, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/books/1/notes", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var results []*noteResponse
	err = json.Unmarshal(w.Body.Bytes(), &results)
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "first note", results[0].Content)
	assert.Nil(t, results[1].PageNumber)
}

func TestGetBookNotesMissingBook(t *testing.T) {
	ctx := context.Background()
	s := bookmocks.NewUseCase(t)
	n := notemocks.NewUseCase(t)
	s.On("Get", mock.AnythingOfType("*context.valueCtx"), int64(42)).Return(book.Book{}, book.ErrNotFound)
	h := Handlers(ctx, s, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/books/42/notes", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Book with id 42 not found."}`, w.Body.String())
	n.AssertNotCalled(t, "ListByBook", mock.Anything, mock.Anything)
}

func TestGetBookNotesEmpty(t *testing.T) {
	ctx := context.Background()
	s := bookmocks.NewUseCase(t)
	n := notemocks.NewUseCase(t)
	s.On("Get", mock.AnythingOfType("*context.valueCtx"), int64(1)).Return(book.Book{ID: 1}, nil)
	n.On("ListByBook", mock.AnythingOfType("*context.valueCtx"), int64(1)).Return([]note.Note{}, nil)
	h := Handlers(ctx, s, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "/books/1/notes", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestPostNote(t *testing.T) {
	ctx := context.Background()
	s := bookmocks.NewUseCase(t)
	n := notemocks.NewUseCase(t)
	page := 99
	n.On("Create", mock.AnythingOfType("*context.valueCtx"), "a thought", mock.MatchedBy(func(p *int) bool {
		return p != nil && *p == 99
	}), int64(1)).Return(note.Note{ID: 5, Content: "a thought", PageNumber: &page, BookID: 1}, nil)
	h := Handlers(ctx, s, n)
	payload := `{"content": "a thought", "page_number": 99}`
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/books/1/notes", strings.NewReader(payload))
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var result noteResponse
	err = json.Unmarshal(w.Body.Bytes(), &result)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), result.ID)
	assert.Equal(t, int64(1), result.BookID)
}

func TestPostNoteWithoutPage(t *testing.T) {
	ctx := context.Background()
	s := bookmocks.NewUseCase(t)
	n := notemocks.NewUseCase(t)
	n.On("Create", mock.AnythingOfType("*context.valueCtx"), "no page here", (*int)(nil), int64(1)).
		Return(note.Note{ID: 6, Content: "no page here", BookID: 1}, nil)
	h := Handlers(ctx, s, n)
	payload := `{"content": "no page here"}`
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/books/1/notes", strings.NewReader(payload))
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var result noteResponse
	err = json.Unmarshal(w.Body.Bytes(), &result)
	assert.NoError(t, err)
	assert.Nil(t, result.PageNumber)
}

func TestPatchNote(t *testing.T) {
	ctx := context.Background()
	s := bookmocks.NewUseCase(t)
	n := notemocks.NewUseCase(t)
	n.On("UpdateContent", mock.AnythingOfType("*context.valueCtx"), int64(5), "revised").
		Return(note.Note{ID: 5, Content: "revised", BookID: 1}, nil)
	h := Handlers(ctx, s, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, "/notes/5", strings.NewReader(`{"content": "revised"}`))
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var result noteResponse
	err = json.Unmarshal(w.Body.Bytes(), &result)
	assert.NoError(t, err)
	assert.Equal(t, "revised", result.Content)
}

func TestPatchNoteNotFound(t *testing.T) {
	ctx := context.Background()
	s := bookmocks.NewUseCase(t)
	n := notemocks.NewUseCase(t)
	n.On("UpdateContent", mock.AnythingOfType("*context.valueCtx"), int64(42), "revised").
		Return(note.Note{}, note.ErrNotFound)
	h := Handlers(ctx, s, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, "/notes/42", strings.NewReader(`{"content": "revised"}`))
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "No note found with id 42. No notes were modified."}`, w.Body.String())
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()
	s := bookmocks.NewUseCase(t)
	n := notemocks.NewUseCase(t)
	n.On("Delete", mock.AnythingOfType("*context.valueCtx"), int64(5)).Return(nil)
	h := Handlers(ctx, s, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, "/notes/5", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteNoteNotFound(t *testing.T) {
	ctx := context.Background()
	s := bookmocks.NewUseCase(t)
	n := notemocks.NewUseCase(t)
	n.On("Delete", mock.AnythingOfType("*context.valueCtx"), int64(42)).Return(note.ErrNotFound)
	h := Handlers(ctx, s, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, "/notes/42", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "No note found with ID 42. No notes were deleted."}`, w.Body.String())
}
