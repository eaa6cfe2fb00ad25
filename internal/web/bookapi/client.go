package bookapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

/* HTTP client for the data API. The presentation service holds no state of
 * its own; everything it renders is fetched through this client per request.
 */

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: baseURL,
	}
}

// Book mirrors the data API's book representation.
type Book struct {
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

// NewBook carries the fields of a book being created.
type NewBook struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	PublishYear int    `json:"publish_year"`
	Description string `json:"description"`
	Review      string `json:"review"`
	Rating      string `json:"rating"`
	CoverURL    string `json:"cover_url"`
}

// Note mirrors the data API's note representation.
type Note struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	PageNumber *int      `json:"page_number"`
	BookID     int64     `json:"book_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// APIError carries the status and the {"error": ...} message of a non-2xx
// data API response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("data api: %d: %s", e.StatusCode, e.Message)
}

func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook fetches a single book. The data API answers 200 with a JSON null
// when the id matches nothing; that surfaces here as found == false.
func (c *Client) GetBook(ctx context.Context, id int64) (Book, bool, error) {
	var b *Book
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/books/%d", id), nil, &b); err != nil {
		return Book{}, false, err
	}
	if b == nil {
		return Book{}, false, nil
	}
	return *b, true, nil
}

func (c *Client) ListNotes(ctx context.Context, bookID int64) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/books/%d/notes", bookID), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) CreateBook(ctx context.Context, nb NewBook) (Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodPost, "/books/new", nb, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int64, rating, review string) error {
	body := map[string]string{"rating": rating, "review": review}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/books/%d", id), body, nil)
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/%d", id), nil, nil)
}

func (c *Client) CreateNote(ctx context.Context, bookID int64, content string, pageNumber *int) (Note, error) {
	body := map[string]any{"content": content, "page_number": pageNumber}
	var n Note
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/books/%d/notes", bookID), body, &n); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (c *Client) UpdateNote(ctx context.Context, noteID int64, content string) error {
	body := map[string]string{"content": content}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/notes/%d", noteID), body, nil)
}

func (c *Client) DeleteNote(ctx context.Context, noteID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notes/%d", noteID), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling data api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
